package main

// Patch is a single DOM update pushed to the browser. Target is a CSS
// selector understood by static/js/session.js.
type Patch struct {
	Op     string `json:"op"`
	Target string `json:"target,omitempty"`
	Name   string `json:"name,omitempty"`
	On     bool   `json:"on,omitempty"`
	Text   string `json:"text,omitempty"`
	Value  string `json:"value,omitempty"`
	Href   string `json:"href,omitempty"`
	Top    int    `json:"top,omitempty"`
	Smooth bool   `json:"smooth,omitempty"`
	Seed   *Seed  `json:"seed,omitempty"`
}

// Event is a browser event forwarded by the client.
type Event struct {
	Type     string          `json:"type"`
	W        int             `json:"w,omitempty"`
	H        int             `json:"h,omitempty"`
	Y        float64         `json:"y,omitempty"`
	Sections []SectionOffset `json:"sections,omitempty"`
	ID       string          `json:"id,omitempty"`
	Ratio    float64         `json:"ratio,omitempty"`
	Kind     string          `json:"kind,omitempty"`
	Target   string          `json:"target,omitempty"`
	Value    string          `json:"value,omitempty"`

	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

func classPatch(target, name string, on bool) Patch {
	return Patch{Op: "class", Target: target, Name: name, On: on}
}

func textPatch(target, text string) Patch {
	return Patch{Op: "text", Target: target, Text: text}
}

func attrPatch(target, name, value string) Patch {
	return Patch{Op: "attr", Target: target, Name: name, Value: value}
}
