package main

import (
	"io"

	"github.com/gin-gonic/gin"
)

// typingStream pushes the typing animation as server-sent events for
// clients that do not open the page session.
func typingStream(phrases []string, pace TypingPace) gin.HandlerFunc {
	return func(c *gin.Context) {
		texts := make(chan string)
		ctx := c.Request.Context()
		go RunTyping(ctx, NewTyper(phrases, pace), func(s string) {
			select {
			case texts <- s:
			case <-ctx.Done():
			}
		})

		c.Stream(func(w io.Writer) bool {
			select {
			case <-ctx.Done():
				return false
			case s := <-texts:
				c.SSEvent("typing", s)
				return true
			}
		})
	}
}
