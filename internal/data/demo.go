package data

// DemoUser is a fixture record for the demo seeder.
type DemoUser struct {
	Name  string
	Email string
	Goal  string
}

// DemoGroup is a fixture group keyed by member emails.
type DemoGroup struct {
	Name         string
	Description  string
	CreatorEmail string
	MemberEmails []string
}

// DemoPost is a fixture post, optionally scoped to a fixture group by name.
type DemoPost struct {
	AuthorEmail string
	Content     string
	GroupName   string
	IsQuestion  bool
}

// All demo accounts share one password so the API is explorable right away.
const DemoPassword = "wallfit123"

var DemoUsers = []DemoUser{
	{Name: "Amelia Hart", Email: "amelia@wallfit.dev", Goal: "Run a half marathon"},
	{Name: "Priya Nair", Email: "priya@wallfit.dev", Goal: "Build core strength"},
	{Name: "Sofia Reyes", Email: "sofia@wallfit.dev", Goal: "Postpartum recovery"},
	{Name: "Lena Fischer", Email: "lena@wallfit.dev", Goal: "Morning workout habit"},
}

var DemoGroups = []DemoGroup{
	{
		Name:         "Morning Yoga Club",
		Description:  "Sunrise flows and accountability check-ins.",
		CreatorEmail: "amelia@wallfit.dev",
		MemberEmails: []string{"priya@wallfit.dev", "lena@wallfit.dev"},
	},
	{
		Name:         "Strength Sisters",
		Description:  "Progressive overload, form checks, and PR celebrations.",
		CreatorEmail: "priya@wallfit.dev",
		MemberEmails: []string{"sofia@wallfit.dev"},
	},
}

var DemoPosts = []DemoPost{
	{
		AuthorEmail: "amelia@wallfit.dev",
		Content:     "Week 3 of the half marathon plan done. Legs are complaining but showing up anyway.",
	},
	{
		AuthorEmail: "sofia@wallfit.dev",
		Content:     "Any tips for easing back into planks after pregnancy?",
		IsQuestion:  true,
	},
	{
		AuthorEmail: "lena@wallfit.dev",
		Content:     "Todays sunrise flow was worth the 5:30 alarm.",
		GroupName:   "Morning Yoga Club",
	},
	{
		AuthorEmail: "priya@wallfit.dev",
		Content:     "Hit a 60kg squat this morning!",
		GroupName:   "Strength Sisters",
	},
}
