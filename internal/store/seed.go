package store

import "github.com/zentryhq/zentry/internal/models"

// Seed loads the demo dataset into an empty store. Calling it on a
// populated store prepends the demo records to whatever is there.
func (s *Store) Seed() {
	team := []models.TeamMember{
		{
			ID:         "1",
			Name:       "Abhinav Sharma",
			Role:       "CEO & Founder",
			Department: "Leadership",
			Avatar:     "https://i.pravatar.cc/150?u=abhinav",
			Email:      "abhinav@zentry.io",
			Phone:      "+91 98765 43210",
			Location:   "Mumbai",
			Skills:     []string{"Strategy", "Capital Markets", "Enterprise AI"},
			Experience: "12 Years",
			Performance: &models.PerformanceMetric{
				KPI: 98, TechnicalGrowth: 95, Collaboration: 99, Reliability: 100,
			},
			SocialLinks: &models.SocialLinks{
				LinkedIn: "https://linkedin.com/in/abhinav",
				GitHub:   "https://github.com/abhinav",
				WhatsApp: "+919876543210",
			},
		},
		{
			ID:         "2",
			Name:       "Anushka Iyer",
			Role:       "Head of Product",
			Department: "Product",
			Avatar:     "https://i.pravatar.cc/150?u=anushka",
			Email:      "anushka@zentry.io",
			Phone:      "+91 98765 43211",
			Location:   "Bangalore",
			Skills:     []string{"Product Design", "Agile", "UX Architecture"},
			Experience: "8 Years",
			Performance: &models.PerformanceMetric{
				KPI: 92, TechnicalGrowth: 88, Collaboration: 95, Reliability: 94,
			},
			SocialLinks: &models.SocialLinks{
				LinkedIn:  "https://linkedin.com/in/anushka",
				Instagram: "https://instagram.com/anushka",
				WhatsApp:  "+919876543211",
			},
		},
		{
			ID:         "3",
			Name:       "Keshav Verma",
			Role:       "Senior Engineer",
			Department: "Engineering",
			Avatar:     "https://i.pravatar.cc/150?u=keshav",
			Email:      "keshav@zentry.io",
			Phone:      "+91 98765 43212",
			Location:   "Pune",
			Skills:     []string{"React", "PostgreSQL", "Cloud Infrastructure"},
			Experience: "6 Years",
			Performance: &models.PerformanceMetric{
				KPI: 96, TechnicalGrowth: 98, Collaboration: 85, Reliability: 98,
			},
			SocialLinks: &models.SocialLinks{
				GitHub:   "https://github.com/keshav",
				LinkedIn: "https://linkedin.com/in/keshav",
				Telegram: "@keshav_v",
			},
		},
	}
	for i := len(team) - 1; i >= 0; i-- {
		s.AddTeamMember(team[i])
	}

	projects := []models.Project{
		{
			ID:          "p1",
			Name:        "Zentry 2.0 Launch",
			Description: "Internal platform upgrade for industrial scaling.",
			Status:      "active",
			Members:     []string{"Abhinav", "Anushka"},
			Stakeholders: &models.Stakeholders{
				Sponsor: "Abhinav Sharma", Lead: "Anushka Iyer", Owner: "Keshav Verma",
			},
			Client:   "Internal",
			Budget:   0,
			Growth:   75,
			Deadline: "2024-06-30",
		},
		{
			ID:          "p2",
			Name:        "Reliance ERP",
			Description: "Enterprise resource planning for Reliance infrastructure.",
			Status:      "active",
			Members:     []string{"Keshav", "Mohit"},
			Stakeholders: &models.Stakeholders{
				Sponsor: "Mohit Gupta", Lead: "Keshav Verma", Owner: "Abhinav Sharma",
			},
			Client:   "Reliance Ind.",
			Budget:   450000,
			Growth:   30,
			Deadline: "2024-09-15",
		},
	}
	for i := len(projects) - 1; i >= 0; i-- {
		s.AddProject(projects[i])
	}

	deals := []models.Deal{
		{ID: "1", Title: "ERP Implementation", Company: "Reliance Ind.", Amount: 450000, Stage: models.StageProposal, Contact: "Abhinav Sharma"},
		{ID: "2", Title: "Cloud Migration", Company: "Tata Consultancy", Amount: 120000, Stage: models.StageWon, Contact: "Keshav Verma"},
	}
	for i := len(deals) - 1; i >= 0; i-- {
		s.AddDeal(deals[i])
	}

	tasks := []models.Task{
		{ID: "1", ProjectID: "p1", Title: "Review GST Compliance", Description: "Ensure all Q4 invoices are aligned.", Status: models.TaskInProgress, Priority: models.PriorityHigh, Assignee: "Abhinav Sharma", DueDate: "2024-05-15"},
		{ID: "2", ProjectID: "p1", Title: "Investor Pitch Deck", Description: "Finalize the slides.", Status: models.TaskTodo, Priority: models.PriorityMedium, Assignee: "Anushka Iyer", DueDate: "2024-05-20"},
	}
	for i := len(tasks) - 1; i >= 0; i-- {
		s.AddTask(tasks[i])
	}

	s.AddPost(models.FeedPost{
		ID:        "1",
		Author:    "Abhinav Sharma",
		Avatar:    "https://i.pravatar.cc/150?u=abhinav",
		Content:   "Excited to announce our new ERP upgrade is live!",
		Timestamp: "2h ago",
		Likes:     12,
	})

	s.AddContact(models.Contact{
		ID: "1", Name: "Abhinav Sharma", Email: "abhinav@reliance.com",
		Company: "Reliance Ind.", Status: models.ContactStatusDeal, Value: 450000,
	})

	s.AddCampaign(models.MarketingCampaign{
		ID: "1", Name: "Q1 Outreach", Status: models.CampaignActive,
		Budget: "₹50,000", Reach: "12,500", Conversions: "450", ROI: "+12%",
	})

	s.AddFlow(models.AutomationFlow{
		ID: "1", Name: "Lead Welcome", Trigger: "New CRM Lead",
		Action: "Send Welcome Email", Status: models.FlowRunning,
	})

	emails := []models.Email{
		{ID: "1", Sender: "Reliance Infra", Subject: "Q4 Agreement Signed", Preview: "We have reviewed the latest ERP proposal and authorized the budget...", Timestamp: "10:45 AM", Read: false, Starred: true, Type: models.EmailIncoming},
		{ID: "2", Sender: "Keshav Verma", Subject: "Cluster Deploy Successful", Preview: "All regional nodes for Zentry 2.0 are now online and synchronized...", Timestamp: "9:12 AM", Read: true, Starred: false, Type: models.EmailIncoming},
		{ID: "3", Sender: "HR Dept", Subject: "Monthly Performance Review", Preview: "Your growth metrics for the last 30 days are now available in the hub...", Timestamp: "Yesterday", Read: true, Starred: false, Type: models.EmailIncoming},
	}
	for i := len(emails) - 1; i >= 0; i-- {
		s.AddEmail(emails[i])
	}

	s.AddFile(models.FileEntry{
		ID: "f1", Name: "Infrastructure_Map_2024.pdf", Size: "12.4 MB",
		Type: "application/pdf", UploadedBy: "Abhinav Sharma",
		Timestamp: "Yesterday", URL: "#", Category: models.FileDocument,
	})
}
