package cli

import "icebreaker-quiz-service/internal/domain"

// sampleQuestions provides a built-in question bank for running without
// Postgres; production deployments load questions from the database instead.
func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			Prompt: "What is Scrum?",
			Topic:  domain.TopicAgility,
			Choices: []domain.Choice{
				{Text: "An Agile framework for project management", Correct: true},
				{Text: "A rugby formation"},
				{Text: "A type of software bug"},
				{Text: "A database management system"},
			},
			Explanation: "Scrum is an Agile framework that helps teams work together. It describes a set of meetings, tools, and roles that work in concert to help teams structure and manage their work.",
		},
		{
			Prompt: "What is a Sprint in Agile?",
			Topic:  domain.TopicAgility,
			Choices: []domain.Choice{
				{Text: "A short race between team members"},
				{Text: "A fixed time period for completing work", Correct: true},
				{Text: "A type of emergency meeting"},
				{Text: "A software testing phase"},
			},
			Explanation: "A Sprint in Agile is a short, time-boxed period when a scrum team works to complete a set amount of work.",
		},
		{
			Prompt: "What is the role of a Scrum Master?",
			Topic:  domain.TopicAgility,
			Choices: []domain.Choice{
				{Text: "The team's direct manager"},
				{Text: "The project owner"},
				{Text: "A servant-leader who facilitates Scrum practices", Correct: true},
				{Text: "The lead developer"},
			},
			Explanation: "The Scrum Master is a servant-leader for the Scrum Team. They help remove impediments, facilitate meetings, and ensure the team follows Scrum practices.",
		},
		{
			Prompt: "Which sport is known as 'The Beautiful Game'?",
			Topic:  domain.TopicSports,
			Choices: []domain.Choice{
				{Text: "Basketball"},
				{Text: "Football (Soccer)", Correct: true},
				{Text: "Tennis"},
				{Text: "Rugby"},
			},
			Explanation: "Football (Soccer) is known as 'The Beautiful Game' due to its flowing nature, artistic qualities, and universal appeal across cultures.",
		},
		{
			Prompt: "How many players are on a standard basketball team on court?",
			Topic:  domain.TopicSports,
			Choices: []domain.Choice{
				{Text: "5", Correct: true},
				{Text: "6"},
				{Text: "7"},
				{Text: "4"},
			},
			Explanation: "A standard basketball team has 5 players on the court at any given time.",
		},
		{
			Prompt: "In which sport would you perform a 'slam dunk'?",
			Topic:  domain.TopicSports,
			Choices: []domain.Choice{
				{Text: "Volleyball"},
				{Text: "Tennis"},
				{Text: "Basketball", Correct: true},
				{Text: "Football"},
			},
			Explanation: "A 'slam dunk' is a type of shot in basketball where the player jumps and forces the ball down through the hoop.",
		},
		{
			Prompt: "Quelle est la capitale de l'Australie?",
			Topic:  domain.TopicGeneral,
			Choices: []domain.Choice{
				{Text: "Sydney"},
				{Text: "Melbourne"},
				{Text: "Canberra", Correct: true},
				{Text: "Brisbane"},
			},
			Explanation: "Canberra est la capitale de l'Australie, et non pas Sydney comme beaucoup le pensent.",
		},
		{
			Prompt: "Qui a peint 'La Nuit étoilée'?",
			Topic:  domain.TopicGeneral,
			Choices: []domain.Choice{
				{Text: "Pablo Picasso"},
				{Text: "Vincent van Gogh", Correct: true},
				{Text: "Claude Monet"},
				{Text: "Salvador Dalí"},
			},
			Explanation: "'La Nuit étoilée' a été peinte par Vincent van Gogh en 1889.",
		},
		{
			Prompt: "What is the first step in handling a customer complaint?",
			Topic:  domain.TopicCustomer,
			Choices: []domain.Choice{
				{Text: "Solve the problem immediately"},
				{Text: "Listen actively to the customer", Correct: true},
				{Text: "Transfer to a supervisor"},
				{Text: "Offer a refund"},
			},
			Explanation: "Active listening is crucial as the first step because it helps understand the customer's issue fully, shows respect, and builds rapport.",
		},
		{
			Prompt: "What does 'CRM' stand for in customer service?",
			Topic:  domain.TopicCustomer,
			Choices: []domain.Choice{
				{Text: "Customer Return Management"},
				{Text: "Customer Relationship Management", Correct: true},
				{Text: "Customer Response Method"},
				{Text: "Customer Review Monitor"},
			},
			Explanation: "'CRM' stands for Customer Relationship Management, which involves strategies and technologies used to manage and analyze customer interactions.",
		},
	}
}
