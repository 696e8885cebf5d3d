package content

// Apps is the published applications table.
var Apps = []App{
	{
		ID:          "app-one",
		Name:        "App One",
		Description: "A brief description of App One and its key features.",
		AppStoreURL: "https://apps.apple.com/app/id123456789",
		SupportURL:  "/support?app=app-one",
		PrivacyURL:  "/privacy?app=app-one",
	},
	{
		ID:          "app-two",
		Name:        "App Two",
		Description: "A brief description of App Two and its key features.",
		AppStoreURL: "https://apps.apple.com/app/id987654321",
		SupportURL:  "/support?app=app-two",
		PrivacyURL:  "/privacy?app=app-two",
	},
}
