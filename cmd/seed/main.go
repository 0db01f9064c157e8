package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/laybeentan/portfolio-api/adapters/persistence"
	"github.com/laybeentan/portfolio-api/internal/config"
	"github.com/laybeentan/portfolio-api/internal/domain/portfolio"
	"github.com/laybeentan/portfolio-api/internal/domain/profile"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

var contentCollections = []string{
	persistence.CollectionProfiles,
	persistence.CollectionExperiences,
	persistence.CollectionSkills,
	persistence.CollectionProjects,
	persistence.CollectionCertifications,
	persistence.CollectionEducation,
}

func main() {
	reset := flag.Bool("reset", false, "drop existing portfolio content before seeding")
	flag.Parse()

	fmt.Println("Seeding portfolio database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	mongoClient, mongoDB, err := persistence.NewMongoDatabase(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect MongoDB", err)
	}
	defer mongoClient.Disconnect(context.Background())

	ctx := context.Background()
	store := persistence.NewStore(mongoDB, appLogger)
	profileRepo := persistence.NewMongoProfileRepo(store)

	existing, err := profileRepo.GetSingleton(ctx)
	if err != nil && !*reset {
		appLogger.Fatal("cannot inspect existing profile", err)
	}
	if existing != nil && !*reset {
		appLogger.Fatal("database already seeded, run with -reset to reseed", nil)
	}
	if *reset {
		if err := dropContent(ctx, mongoDB); err != nil {
			appLogger.Fatal("cannot drop existing content", err)
		}
		appLogger.Info("Dropped existing portfolio content.")
	}

	created, err := profileRepo.Create(ctx, seedProfile())
	if err != nil {
		appLogger.Fatal("cannot create profile", err)
	}
	profileID := created.ID
	appLogger.Info("Created profile", zap.String("profile_id", profileID.Hex()))

	experienceRepo := persistence.NewMongoExperienceRepo(store)
	experiences := seedExperiences(profileID)
	for i := range experiences {
		if _, err := experienceRepo.Create(ctx, &experiences[i]); err != nil {
			appLogger.Fatal("cannot create experience", err)
		}
	}
	appLogger.Info("Created experience records", zap.Int("count", len(experiences)))

	skillRepo := persistence.NewMongoSkillRepo(store)
	skills := seedSkills(profileID)
	for i := range skills {
		if _, err := skillRepo.Create(ctx, &skills[i]); err != nil {
			appLogger.Fatal("cannot create skill", err)
		}
	}
	appLogger.Info("Created skill records", zap.Int("count", len(skills)))

	projectRepo := persistence.NewMongoProjectRepo(store)
	projects := seedProjects(profileID)
	for i := range projects {
		if _, err := projectRepo.Create(ctx, &projects[i]); err != nil {
			appLogger.Fatal("cannot create project", err)
		}
	}
	appLogger.Info("Created project records", zap.Int("count", len(projects)))

	certificationRepo := persistence.NewMongoCertificationRepo(store)
	certifications := seedCertifications(profileID)
	for i := range certifications {
		if _, err := certificationRepo.Create(ctx, &certifications[i]); err != nil {
			appLogger.Fatal("cannot create certification", err)
		}
	}
	appLogger.Info("Created certification records", zap.Int("count", len(certifications)))

	educationRepo := persistence.NewMongoEducationRepo(store)
	if _, err := educationRepo.Create(ctx, seedEducation(profileID)); err != nil {
		appLogger.Fatal("cannot create education", err)
	}
	appLogger.Info("Created education record")

	appLogger.Info("Database seeding completed successfully!")
}

func dropContent(ctx context.Context, db *mongo.Database) error {
	for _, name := range contentCollections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}

func seedProfile() *profile.Profile {
	return &profile.Profile{
		Name:            "Lay Been Tan",
		Title:           "Senior Program Manager | Vulnerability Management Expert",
		Location:        "Ottawa, ON Canada",
		Email:           "laybeentan@yahoo.com",
		LinkedIn:        "https://www.linkedin.com/in/lay-been-tan-1262502",
		YearsExperience: 31,
		CurrentCompany:  "Nokia",
		Specialization:  "Vulnerability Management for Telecommunications",
		Summary:         "Seasoned telecommunications professional with over three decades of experience in program management, specializing in vulnerability management and security initiatives across enterprise-level telecom infrastructure.",
		KeyStrengths: []string{
			"Quick learner who adapts rapidly to new technologies",
			"Dedicated professional with unwavering commitment to excellence",
			"Independent worker who delivers results with minimal supervision",
		},
	}
}

func seedExperiences(profileID primitive.ObjectID) []portfolio.Experience {
	return []portfolio.Experience{
		{
			ProfileID:   profileID,
			Company:     "Nokia",
			Role:        "Senior Program Manager",
			StartDate:   "2010-01",
			EndDate:     nil,
			Duration:    "15 years",
			Location:    "Ottawa, Canada",
			Description: "Lead comprehensive vulnerability management programs for Nokia's telecommunications portfolio, overseeing security initiatives across multiple product lines and ensuring compliance with international security standards.",
			Achievements: []string{
				"Established enterprise-wide vulnerability assessment frameworks reducing security incidents by 40%",
				"Managed cross-functional teams of 25+ engineers across multiple time zones",
				"Implemented automated vulnerability scanning processes increasing detection efficiency by 60%",
				"Led security compliance initiatives for 5G network infrastructure deployments",
			},
			Technologies: []string{"Vulnerability Management", "Risk Assessment", "Security Frameworks", "5G Security", "Compliance Management"},
			Order:        1,
		},
		{
			ProfileID:   profileID,
			Company:     "Nokia",
			Role:        "Technical Project Manager",
			StartDate:   "2006-01",
			EndDate:     strPtr("2010-01"),
			Duration:    "4 years",
			Location:    "Ottawa, Canada",
			Description: "Managed technical projects focused on telecommunications infrastructure development, coordinating between engineering teams and ensuring project deliverables met quality and timeline requirements.",
			Achievements: []string{
				"Successfully delivered 15+ critical telecom infrastructure projects on time and within budget",
				"Introduced agile project management methodologies improving team productivity by 35%",
				"Coordinated with international teams across North America and Europe",
				"Established quality assurance processes that reduced post-deployment issues by 50%",
			},
			Technologies: []string{"Project Management", "Agile Methodologies", "Quality Assurance", "Team Leadership", "Process Improvement"},
			Order:        2,
		},
		{
			ProfileID:   profileID,
			Company:     "Nokia",
			Role:        "Technical Project Manager",
			StartDate:   "1994-01",
			EndDate:     strPtr("2006-01"),
			Duration:    "12 years",
			Location:    "Ottawa, Canada",
			Description: "Started career managing technical projects in telecommunications, developing expertise in GSM, Ethernet, and SIP technologies while building strong foundation in project management and team leadership.",
			Achievements: []string{
				"Managed migration projects from legacy systems to modern telecom infrastructure",
				"Developed standardized project management processes adopted company-wide",
				"Led technical training programs for junior project managers",
				"Maintained 98% project success rate across diverse technical initiatives",
			},
			Technologies: []string{"GSM", "Ethernet", "SIP", "Legacy System Migration", "Technical Training", "Process Development"},
			Order:        3,
		},
		{
			ProfileID:   profileID,
			Company:     "Alcatel Canada",
			Role:        "Software Development Engineering Manager",
			StartDate:   "2000-01",
			EndDate:     strPtr("2006-01"),
			Duration:    "6 years",
			Location:    "Canada",
			Description: "Led software development engineering teams, overseeing the design and implementation of telecommunications software solutions while managing engineering resources and project timelines.",
			Achievements: []string{
				"Managed engineering teams developing next-generation telecom software platforms",
				"Implemented software development lifecycle improvements reducing time-to-market by 25%",
				"Established quality metrics and testing frameworks for software products",
				"Mentored 20+ junior engineers in software development best practices",
			},
			Technologies: []string{"Software Engineering", "Team Management", "SDLC", "Quality Metrics", "Mentoring", "Product Development"},
			Order:        4,
		},
		{
			ProfileID:   profileID,
			Company:     "Newbridge Networks Corporation",
			Role:        "Software Design Manager",
			StartDate:   "1994-01",
			EndDate:     strPtr("2000-01"),
			Duration:    "6 years",
			Location:    "Canada",
			Description: "Beginning of telecommunications career, managing software design projects and building foundational expertise in network technologies and software development management.",
			Achievements: []string{
				"Led design of innovative network software solutions for enterprise clients",
				"Established design review processes improving software quality and reliability",
				"Collaborated with hardware teams on integrated network solutions",
				"Built expertise in networking protocols and telecommunications standards",
			},
			Technologies: []string{"Network Software Design", "Software Architecture", "Design Reviews", "Hardware Integration", "Networking Protocols"},
			Order:        5,
		},
	}
}

func seedSkills(profileID primitive.ObjectID) []portfolio.Skill {
	type entry struct {
		category    string
		name        string
		proficiency int
		order       int
	}
	entries := []entry{
		{"Vulnerability Management", "Risk Assessment", 95, 1},
		{"Vulnerability Management", "Security Frameworks", 90, 2},
		{"Vulnerability Management", "Threat Analysis", 92, 3},
		{"Vulnerability Management", "Compliance Management", 88, 4},
		{"Vulnerability Management", "Incident Response", 85, 5},

		{"Telecommunications", "Ethernet", 95, 1},
		{"Telecommunications", "GSM", 92, 2},
		{"Telecommunications", "SIP", 90, 3},
		{"Telecommunications", "5G Infrastructure", 85, 4},
		{"Telecommunications", "Network Architecture", 88, 5},

		{"Project Management", "Agile Methodologies", 92, 1},
		{"Project Management", "Team Leadership", 95, 2},
		{"Project Management", "Stakeholder Management", 90, 3},
		{"Project Management", "Resource Planning", 88, 4},
		{"Project Management", "Quality Assurance", 90, 5},

		{"Technical Leadership", "Software Engineering", 85, 1},
		{"Technical Leadership", "System Architecture", 82, 2},
		{"Technical Leadership", "Process Improvement", 92, 3},
		{"Technical Leadership", "Technical Mentoring", 88, 4},
		{"Technical Leadership", "Innovation Management", 85, 5},
	}

	skills := make([]portfolio.Skill, len(entries))
	for i, e := range entries {
		skills[i] = portfolio.Skill{
			ProfileID:   profileID,
			Category:    e.category,
			Name:        e.name,
			Proficiency: e.proficiency,
			Order:       e.order,
		}
	}
	return skills
}

func seedProjects(profileID primitive.ObjectID) []portfolio.Project {
	return []portfolio.Project{
		{
			ProfileID:   profileID,
			Title:       "Enterprise Vulnerability Management Framework",
			Category:    "Security Infrastructure",
			Status:      "Completed",
			StartDate:   "2022-01",
			EndDate:     strPtr("2024-12"),
			Description: "Led the design and implementation of a comprehensive vulnerability management framework across Nokia's global telecommunications infrastructure, covering 500+ network components and serving millions of users.",
			Challenges: []string{
				"Integrating disparate legacy security systems across multiple product lines",
				"Establishing unified vulnerability assessment standards for global teams",
				"Ensuring minimal disruption to ongoing telecommunications services",
			},
			Solutions: []string{
				"Developed phased migration strategy reducing system downtime by 85%",
				"Created automated vulnerability scanning protocols increasing detection speed by 60%",
				"Established cross-regional security review boards ensuring consistent standards",
			},
			Impact: []string{
				"40% reduction in critical security incidents across the portfolio",
				"Improved compliance ratings from regulatory bodies by 35%",
				"Enhanced threat response time from 48 hours to 6 hours average",
			},
			Technologies: []string{"Vulnerability Scanning", "Risk Assessment", "Compliance Frameworks", "Automation Tools", "Security Analytics"},
			Metrics: map[string]any{
				"budget":   "$2.5M",
				"teamSize": "25+ Engineers",
				"timeline": "24 Months",
				"coverage": "500+ Components",
			},
			Order: 1,
		},
		{
			ProfileID:   profileID,
			Title:       "5G Network Security Compliance Initiative",
			Category:    "Network Infrastructure",
			Status:      "Ongoing",
			StartDate:   "2023-01",
			EndDate:     nil,
			Description: "Spearheading security compliance efforts for Nokia's 5G network infrastructure deployment, ensuring adherence to international security standards and regulatory requirements across North American markets.",
			Challenges: []string{
				"Navigating complex international security regulations for 5G deployment",
				"Coordinating security assessments across multiple vendor partnerships",
				"Balancing security requirements with performance optimization needs",
			},
			Solutions: []string{
				"Established comprehensive security assessment protocols for 5G components",
				"Created vendor security certification program reducing evaluation time by 50%",
				"Implemented continuous monitoring systems for real-time compliance tracking",
			},
			Impact: []string{
				"Successfully achieved security certification for 12 major 5G deployments",
				"Reduced regulatory approval timeline by 30% through proactive compliance",
				"Established Nokia as industry leader in 5G security best practices",
			},
			Technologies: []string{"5G Security", "Regulatory Compliance", "Vendor Management", "Continuous Monitoring", "Risk Analysis"},
			Metrics: map[string]any{
				"budget":   "$1.8M",
				"teamSize": "18 Specialists",
				"timeline": "Ongoing",
				"coverage": "12 Deployments",
			},
			Order: 2,
		},
	}
}

func seedCertifications(profileID primitive.ObjectID) []portfolio.Certification {
	return []portfolio.Certification{
		{
			ProfileID:    profileID,
			Name:         "Certified SAFe® 4 Product Owner",
			Issuer:       "Scaled Agile",
			DateObtained: "2020-03",
			Status:       "Current",
			Relevance:    "Agile Program Management",
			Order:        1,
		},
		{
			ProfileID:    profileID,
			Name:         "Product Manager Certification",
			Issuer:       "Professional Certification Body",
			DateObtained: "2019-08",
			Status:       "Current",
			Relevance:    "Strategic Product Leadership",
			Order:        2,
		},
	}
}

func seedEducation(profileID primitive.ObjectID) *portfolio.Education {
	return &portfolio.Education{
		ProfileID:   profileID,
		Degree:      "Bachelor's Degree",
		Institution: "Acadia University",
		StartDate:   "1990",
		EndDate:     "1994",
		Location:    "Nova Scotia, Canada",
		Order:       1,
	}
}
