package resume

// Seed is the fixed document loaded at session start. There is no external
// file format or schema versioning; the session begins from this literal and
// is discarded when the process exits.
func Seed() Document {
	return Document{
		Name: "Zain Atif",
		Contact: Contact{
			Email:    "zainatif15403@gmail.com",
			Phone:    "+92 3148501486",
			Location: "Gujrat, Pakistan",
		},
		Sections: []Section{
			{
				ID:    "summary",
				Title: "SUMMARY",
				Items: []Item{
					NewParagraphItem("I am a Front-End Developer with 2+ years of experience building clean, responsive, and user-friendly web interfaces. Specializing in TypeScript, HTML5, CSS3, and Tailwind CSS with expertise in Next.js development. I have focused on creating high-performance, accessible web applications with modern UI/UX principles."),
				},
			},
			{
				ID:    "experience",
				Title: "WORK EXPERIENCE",
				Items: []Item{
					NewEntryItem(EntryFields{
						BoldTitle:      "TechNova Solutions Inc.",
						BoldDate:       "08/2023 – 02/2024",
						SecondaryTitle: "Front-End Developer, San Francisco, CA",
						Bullets: []string{
							"Developed and maintained responsive web applications using Next.js and TypeScript for US-based SaaS platform",
							"Implemented custom UI components with Tailwind CSS, improving development efficiency by 30%",
							"Implemented automated testing and CI/CD pipelines using GitHub Actions for seamless deployments",
						},
					}),
					NewEntryItem(EntryFields{
						BoldTitle:      "DigitalFlow Agency",
						BoldDate:       "01/2023 – 04/2023",
						SecondaryTitle: "Junior Front-End Developer, New York, NY",
						Bullets: []string{
							"Built responsive client websites using HTML5, CSS3, and JavaScript for multiple US-based clients",
							"Implemented Tailwind CSS frameworks across 15+ client projects, ensuring consistent branding",
							"Managed version control using Git/GitHub and deployed projects to Vercel hosting platform",
						},
					}),
				},
			},
			{
				ID:    "education",
				Title: "EDUCATION",
				Items: []Item{
					NewEntryItem(EntryFields{
						BoldTitle:      "FDC Faisal, Karachi",
						BoldDate:       "07/2025",
						SecondaryTitle: "HSSC (Computer Science)",
					}),
					NewEntryItem(EntryFields{
						BoldTitle:      "University of Gujrat, Gujrat",
						BoldDate:       "Expected: 06/2029",
						SecondaryTitle: "BS (Software Engineering)",
					}),
				},
			},
			{
				ID:    "others",
				Title: "OTHERS",
				Items: []Item{
					NewEntryItem(EntryFields{
						Bullets: []string{
							"Technical Skills: TypeScript/JavaScript, HTML5, CSS3/Tailwind CSS, Next.js, Vercel, Git & GitHub",
							"Languages: English (Fluent B2), Urdu (Native C2)",
						},
					}),
				},
			},
		},
	}
}
