package main

var (
	AboutMe = `I'm an **Electrical Engineer** turned **ML & AI engineer**. I build deep learning
models for vision and medical imaging, fine-tune transformers for language tasks,
and lately spend most of my time on *agentic* systems that get real work done.

Most of my projects start as a question about data and end as something people can
actually use: a Streamlit app, a desktop tool, or an agent that runs around the clock.
Everything I build is on [GitHub](https://github.com/abdullahzunorain).`

	TypingPhrases = []string{
		"ML & Deep Learning Engineer",
		"NLP & LLM Developer",
		"Agentic AI Builder",
		"Data Scientist",
		"Electrical Engineer",
		"Open Source Enthusiast",
	}

	// The first stat is replaced by the live repository count when GitHub answers.
	HeroStatDefaults = []HeroStat{
		{Number: "40+", Label: "Repositories"},
		{Number: "16", Label: "Featured Projects"},
		{Number: "5", Label: "Domains"},
	}

	NavSections = []string{"hero", "about", "skills", "projects", "contact"}

	// Elements flagged for reveal-on-scroll, besides the project cards.
	RevealSections = []string{"about", "skills", "projects-head", "contact"}
)

var ProjectList = []Project{
	{
		Icon:     "🧠",
		Title:    "Pea Plant Disease Detection",
		Desc:     "Automated disease detection using VGG16, YOLOv8, custom CNN, Naïve Bayes & Random Forest. Comprehensive comparative study across DL and ML models.",
		Tags:     []string{"YOLOv8", "VGG16", "CNN", "Deep Learning"},
		Category: CategoryML,
		Stars:    2,
		URL:      "https://github.com/abdullahzunorain/Pea_Plant_Disease_Detection_on_Various_ML_and_DL_Techniques",
	},
	{
		Icon:     "📈",
		Title:    "UMKM Stock Forecasting App",
		Desc:     "AI-powered daily stock forecasting web app for UMKM businesses. Predicts optimal stock levels to minimise daily losses.",
		Tags:     []string{"Forecasting", "Streamlit", "Python", "ML"},
		Category: CategoryML,
		Stars:    1,
		URL:      "https://github.com/abdullahzunorain/umkm-forecasting-app",
	},
	{
		Icon:     "🧬",
		Title:    "Brain Tumor Detection Desktop App",
		Desc:     "Desktop application for brain tumor detection using Deep Learning. Provides a GUI for medical image analysis and classification.",
		Tags:     []string{"Deep Learning", "TensorFlow", "Medical AI", "Python"},
		Category: CategoryML,
		Stars:    1,
		URL:      "https://github.com/abdullahzunorain/Desktop_App_for_Brain_Tumor_Detection_using_Deep_Learning",
	},
	{
		Icon:     "🌞",
		Title:    "Solar Panel Defect Segmentation",
		Desc:     "Semantic segmentation of defective spots on solar panels using DeepLabV3+. Enables automated quality control in renewable energy.",
		Tags:     []string{"DeepLabV3+", "Segmentation", "Computer Vision"},
		Category: CategoryML,
		Stars:    0,
		URL:      "https://github.com/abdullahzunorain/defective-spots-on-solar-panels-segmentation-using-Deeplabv3-",
	},
	{
		Icon:     "💬",
		Title:    "Sentiment140 DistilBERT Fine-Tuning",
		Desc:     "Fine-tuned DistilBERT on the Sentiment140 dataset for binary sentiment classification with high accuracy.",
		Tags:     []string{"DistilBERT", "NLP", "Fine-Tuning", "Transformers"},
		Category: CategoryNLP,
		Stars:    0,
		URL:      "https://github.com/abdullahzunorain/Sentiment140_DistilBERT_FineTuning",
	},
	{
		Icon:     "📰",
		Title:    "BBC News Text Classification",
		Desc:     "Case study on multi-class text classification of BBC news articles using classical NLP and ML techniques.",
		Tags:     []string{"Text Classification", "NLP", "Scikit-Learn"},
		Category: CategoryNLP,
		Stars:    1,
		URL:      "https://github.com/abdullahzunorain/Case_Study_Text_Classification_of_BBC_News_Articles",
	},
	{
		Icon:     "🌐",
		Title:    "Website NLP Preprocessing",
		Desc:     "End-to-end NLP preprocessing pipeline applied to web-scraped content including tokenisation, stopword removal, stemming, and more.",
		Tags:     []string{"NLP", "Preprocessing", "BeautifulSoup", "Python"},
		Category: CategoryNLP,
		Stars:    2,
		URL:      "https://github.com/abdullahzunorain/Website_Preprocessing_using_NLP_Techniques",
	},
	{
		Icon:     "✈️",
		Title:    "FlyingWhale Airline BI Analysis",
		Desc:     "Business Intelligence analysis for an airline covering bookings, cancellations, loyalty data, and actionable insights.",
		Tags:     []string{"BI", "Data Analysis", "Excel", "Visualisation"},
		Category: CategoryData,
		Stars:    2,
		URL:      "https://github.com/abdullahzunorain/FlyingWhale_Airline_Business_Intelligence_Analysis",
	},
	{
		Icon:     "📊",
		Title:    "Stock Data Analysis & Visualisation",
		Desc:     "Financial data extraction and interactive dashboard for Tesla & GameStop using yfinance, BeautifulSoup, and Plotly.",
		Tags:     []string{"yfinance", "Plotly", "Python", "Finance"},
		Category: CategoryData,
		Stars:    1,
		URL:      "https://github.com/abdullahzunorain/Stock-Data-Analysis-and-Visualization-for-Investment-Firm",
	},
	{
		Icon:     "🗓️",
		Title:    "AI Calendar Agent",
		Desc:     "Agentic AI calendar assistant built with the OpenAI Agents SDK. Kaggle AI Agents competition capstone submission.",
		Tags:     []string{"AI Agents", "OpenAI SDK", "Agentic AI"},
		Category: CategoryAgent,
		Stars:    0,
		URL:      "https://github.com/abdullahzunorain/calender_agent",
	},
	{
		Icon:     "🏭",
		Title:    "AgentFactory",
		Desc:     "Platform to build digital FTEs (AI Agents) that work 24/7, turning domain expertise in sales, legal, finance, and healthcare into autonomous agents.",
		Tags:     []string{"Agentic AI", "LLMs", "Autonomous Agents"},
		Category: CategoryAgent,
		Stars:    0,
		URL:      "https://github.com/abdullahzunorain/agentfactory",
	},
	{
		Icon:     "⚙️",
		Title:    "Wire Prepping Machine – Proteus",
		Desc:     "Embedded design of a wire-prepping machine controller using C++ and Proteus simulation. Industrial automation project.",
		Tags:     []string{"C++", "Proteus", "Embedded", "Automation"},
		Category: CategoryEmbedded,
		Stars:    1,
		URL:      "https://github.com/abdullahzunorain/wire_prepping_machine_design_using_proteus",
	},
	{
		Icon:     "🔐",
		Title:    "Digital Door Lock – 8051 MCU",
		Desc:     "Microcontroller-based digital door lock system with keypad input and EEPROM storage for secure PIN management.",
		Tags:     []string{"8051 MCU", "C", "Proteus", "Embedded"},
		Category: CategoryEmbedded,
		Stars:    0,
		URL:      "https://github.com/abdullahzunorain/Digital_Door_Lock_TASK_21",
	},
	{
		Icon:     "🩺",
		Title:    "Diabetes Predictor Web App",
		Desc:     "Machine learning web application for diabetes prediction built with Streamlit, offering an intuitive medical risk assessment tool.",
		Tags:     []string{"Streamlit", "ML", "Healthcare", "Python"},
		Category: CategoryML,
		Stars:    1,
		URL:      "https://github.com/abdullahzunorain/Diabetes_Predictor_WebApp",
	},
	{
		Icon:     "🏀",
		Title:    "Basketball Player Detector – YOLOv8",
		Desc:     "Real-time basketball player detection using YOLOv8 on custom dataset. Demonstrates object detection in sports analytics.",
		Tags:     []string{"YOLOv8", "Object Detection", "Computer Vision"},
		Category: CategoryML,
		Stars:    0,
		URL:      "https://github.com/abdullahzunorain/BasketballPlayerDetector-YOLOv8",
	},
	{
		Icon:     "🌿",
		Title:    "Tomato Leaf Disease Classification",
		Desc:     "Deep learning model for multi-class classification of tomato leaf diseases, enabling early agricultural disease detection.",
		Tags:     []string{"Deep Learning", "Agriculture AI", "CNN"},
		Category: CategoryML,
		Stars:    1,
		URL:      "https://github.com/abdullahzunorain/Tomato-Leaf-Disease-Classification-Using-DL",
	},
}
