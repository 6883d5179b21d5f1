package catalog

import "github.com/jonathan/course-recommender/internal/types"

// FallbackCourses returns the minimal dataset used when every other source
// fails. It covers three distinct categories, skill levels and both types.
func FallbackCourses() []types.Course {
	return []types.Course{
		{
			ID: "1", Title: "Python Basics", Description: "Learn Python programming",
			Platform: "Coursera", Duration: "4 weeks", SkillLevel: types.SkillBeginner,
			Type: types.CourseTypeFree, Category: "AI", URL: "https://example.com/1",
		},
		{
			ID: "2", Title: "Web Development", Description: "Build web applications",
			Platform: "Udemy", Duration: "8 weeks", SkillLevel: types.SkillIntermediate,
			Type: types.CourseTypePaid, Category: "Web Dev", URL: "https://example.com/2",
		},
		{
			ID: "3", Title: "Data Science", Description: "Analyze data",
			Platform: "edX", Duration: "6 weeks", SkillLevel: types.SkillAdvanced,
			Type: types.CourseTypeFree, Category: "Data Science", URL: "https://example.com/3",
		},
	}
}

// SampleCourses returns the catalog written to disk when no CSV file exists.
func SampleCourses() []types.Course {
	return []types.Course{
		sample("1", "Machine Learning Foundations", "Introduction to machine learning concepts, supervised learning, regression and classification with Python", "Coursera", "6 weeks", types.SkillBeginner, types.CourseTypeFree, "AI"),
		sample("2", "Deep Learning Specialization", "Neural networks, convolutional networks, sequence models and deep learning best practices", "Coursera", "16 weeks", types.SkillAdvanced, types.CourseTypePaid, "AI"),
		sample("3", "Natural Language Processing", "Text processing, word embeddings, transformers and language models for NLP applications", "edX", "10 weeks", types.SkillIntermediate, types.CourseTypePaid, "AI"),
		sample("4", "Prompt Engineering for Developers", "Design prompts for large language models and build AI powered applications", "DeepLearning.AI", "2 weeks", types.SkillBeginner, types.CourseTypeFree, "AI"),
		sample("5", "HTML and CSS Essentials", "Build responsive web pages with semantic HTML, CSS layout, flexbox and grid", "freeCodeCamp", "4 weeks", types.SkillBeginner, types.CourseTypeFree, "Web Dev"),
		sample("6", "Modern JavaScript and React", "JavaScript fundamentals, React components, hooks and state management for web applications", "Udemy", "8 weeks", types.SkillIntermediate, types.CourseTypePaid, "Web Dev"),
		sample("7", "Full Stack Web Development", "Build full stack web applications with Node.js, Express, REST APIs and databases", "Coursera", "12 weeks", types.SkillIntermediate, types.CourseTypePaid, "Web Dev"),
		sample("8", "Web Performance Engineering", "Optimize web application performance, caching, rendering and network delivery", "Frontend Masters", "3 weeks", types.SkillAdvanced, types.CourseTypePaid, "Web Dev"),
		sample("9", "Data Analysis with Pandas", "Clean, transform and analyze data with Python, pandas and data visualization", "Kaggle", "3 weeks", types.SkillBeginner, types.CourseTypeFree, "Data Science"),
		sample("10", "Statistics for Data Science", "Probability, statistical inference, hypothesis testing and regression for data analysis", "edX", "8 weeks", types.SkillIntermediate, types.CourseTypeFree, "Data Science"),
		sample("11", "Big Data with Spark", "Process large datasets with Apache Spark, distributed computing and data pipelines", "Udacity", "14 weeks", types.SkillAdvanced, types.CourseTypePaid, "Data Science"),
		sample("12", "SQL for Data Analysis", "Query relational databases with SQL, joins, aggregations and window functions", "Mode", "5 weeks", types.SkillBeginner, types.CourseTypeFree, "Data Science"),
		sample("13", "Cloud Computing Fundamentals", "Cloud concepts, virtual machines, storage and networking on major cloud providers", "AWS Skill Builder", "4 weeks", types.SkillBeginner, types.CourseTypeFree, "Cloud"),
		sample("14", "Kubernetes in Production", "Deploy, scale and operate containerized applications with Kubernetes and Docker", "Linux Foundation", "10 weeks", types.SkillAdvanced, types.CourseTypePaid, "Cloud"),
		sample("15", "DevOps with CI/CD", "Continuous integration, continuous delivery pipelines, infrastructure as code and monitoring", "Udemy", "6 weeks", types.SkillIntermediate, types.CourseTypePaid, "Cloud"),
		sample("16", "Cybersecurity Essentials", "Security fundamentals, threat modeling, network security and cryptography basics", "Cisco", "5 weeks", types.SkillBeginner, types.CourseTypeFree, "Security"),
		sample("17", "Ethical Hacking", "Penetration testing, vulnerability assessment and web application security", "Udemy", "12 weeks", types.SkillAdvanced, types.CourseTypePaid, "Security"),
		sample("18", "Android App Development", "Build Android mobile applications with Kotlin, Jetpack Compose and Material Design", "Google", "8 weeks", types.SkillIntermediate, types.CourseTypeFree, "Mobile"),
		sample("19", "iOS Development with Swift", "Build iOS mobile apps with Swift, SwiftUI and Xcode", "Apple", "20 weeks", types.SkillBeginner, types.CourseTypePaid, "Mobile"),
		sample("20", "Algorithms and Data Structures", "Sorting, searching, graphs, dynamic programming and algorithm analysis", "Coursera", "10 weeks", types.SkillIntermediate, types.CourseTypeFree, "Computer Science"),
	}
}

func sample(id, title, description, platform, duration, level, courseType, category string) types.Course {
	return types.Course{
		ID:          id,
		Title:       title,
		Description: description,
		Platform:    platform,
		Duration:    duration,
		SkillLevel:  level,
		Type:        courseType,
		Category:    category,
		URL:         "https://example.com/courses/" + id,
	}
}
