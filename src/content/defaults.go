package content

import "git.noga.studio/noga/site/src/models"

/*
Fallback copy for public pages. When a section has no published row for the
requested locale the site renders these instead of an empty block, so a fresh
database still serves a complete landing page. The admin console never uses
these; editors start from whatever is actually stored.
*/

func DefaultHero(locale string) models.HeroSection {
	if locale == "he" {
		return models.HeroSection{
			Locale:        "he",
			Status:        models.StatusPublished,
			HeadingTop:    "ברוכים הבאים",
			HeadingBottom: "לסטודיו של נוגה",
			SubheadingLines: []string{
				"תוכנית ליווי אישית",
				"שמביאה תוצאות אמיתיות",
			},
			CtaLabel: "להצטרפות",
		}
	}
	return models.HeroSection{
		Locale:        "en",
		Status:        models.StatusPublished,
		HeadingTop:    "Welcome to",
		HeadingBottom: "Noga Studio",
		SubheadingLines: []string{
			"A personal coaching program",
			"that delivers real results",
		},
		CtaLabel: "Join now",
	}
}

func DefaultStats(locale string) StatsContent {
	if locale == "he" {
		return StatsContent{
			Section: models.StatsSection{
				Locale:      "he",
				Status:      models.StatusPublished,
				Tag:         "מספרים",
				TitleTop:    "התוצאות",
				TitleBottom: "מדברות בעד עצמן",
				Description: "שנים של עבודה עם מאות מתאמנות.",
			},
			Items: []models.StatsItem{
				{Value: "500+", Note: "מתאמנות", Description: "עברו את התוכנית", Ordering: 1},
				{Value: "7", Note: "שנים", Description: "של ניסיון מקצועי", Ordering: 2},
				{Value: "92%", Note: "שביעות רצון", Description: "ממליצות לחברות", Ordering: 3},
			},
		}
	}
	return StatsContent{
		Section: models.StatsSection{
			Locale:      "en",
			Status:      models.StatusPublished,
			Tag:         "Numbers",
			TitleTop:    "Results that",
			TitleBottom: "speak for themselves",
			Description: "Years of work with hundreds of clients.",
		},
		Items: []models.StatsItem{
			{Value: "500+", Note: "clients", Description: "completed the program", Ordering: 1},
			{Value: "7", Note: "years", Description: "of professional experience", Ordering: 2},
			{Value: "92%", Note: "satisfaction", Description: "recommend to friends", Ordering: 3},
		},
	}
}

func DefaultProgram(locale string) ProgramContent {
	if locale == "he" {
		return ProgramContent{
			Section: models.ProgramSection{
				Locale:          "he",
				Status:          models.StatusPublished,
				TitleLines:      []string{"מה כוללת", "התוכנית"},
				Paragraphs:      []string{"תוכנית מלאה שמלווה אותך שלב אחרי שלב."},
				ButtonMoreLabel: "להציג הכל",
				ButtonLessLabel: "להציג פחות",
				PreviewCount:    3,
			},
			Modules: []models.ProgramModule{
				{Title: "תוכנית אימונים אישית", Body: "נבנית במיוחד עבורך ומתעדכנת לאורך הדרך.", Ordering: 1},
				{Title: "תפריט תזונה", Body: "תפריט גמיש שמתאים לאורח החיים שלך.", Ordering: 2},
				{Title: "ליווי צמוד", Body: "זמינות מלאה לשאלות ותמיכה.", Ordering: 3},
			},
		}
	}
	return ProgramContent{
		Section: models.ProgramSection{
			Locale:          "en",
			Status:          models.StatusPublished,
			TitleLines:      []string{"What the", "program includes"},
			Paragraphs:      []string{"A complete program that guides you step by step."},
			ButtonMoreLabel: "Show all",
			ButtonLessLabel: "Show less",
			PreviewCount:    3,
		},
		Modules: []models.ProgramModule{
			{Title: "Personal training plan", Body: "Built for you and adjusted as you progress.", Ordering: 1},
			{Title: "Nutrition menu", Body: "A flexible menu that fits your lifestyle.", Ordering: 2},
			{Title: "Close guidance", Body: "Full availability for questions and support.", Ordering: 3},
		},
	}
}

func DefaultWhoIsFor(locale string) WhoIsForContent {
	if locale == "he" {
		return WhoIsForContent{
			Section: models.WhoIsForSection{
				Locale:      "he",
				Status:      models.StatusPublished,
				Tag:         "למי זה מתאים",
				TitlePrefix: "התוכנית",
				TitleSuffix: "בשבילך אם",
			},
			Items: []models.WhoIsForItem{
				{NumberLabel: "01", Title: "ניסית הכל", Bullets: []string{"דיאטות שלא החזיקו", "אימונים בלי תוצאות"}, Ordering: 1},
				{NumberLabel: "02", Title: "אין לך זמן", Bullets: []string{"לוח זמנים עמוס", "צריכה תוכנית יעילה"}, Ordering: 2},
			},
		}
	}
	return WhoIsForContent{
		Section: models.WhoIsForSection{
			Locale:      "en",
			Status:      models.StatusPublished,
			Tag:         "Who it's for",
			TitlePrefix: "The program is",
			TitleSuffix: "for you if",
		},
		Items: []models.WhoIsForItem{
			{NumberLabel: "01", Title: "You've tried everything", Bullets: []string{"Diets that didn't stick", "Workouts with no results"}, Ordering: 1},
			{NumberLabel: "02", Title: "You're short on time", Bullets: []string{"A packed schedule", "You need an efficient plan"}, Ordering: 2},
		},
	}
}

func DefaultResults(locale string) models.ResultsSection {
	if locale == "he" {
		return models.ResultsSection{
			Locale:         "he",
			Status:         models.StatusPublished,
			TitleTop:       "מה תקבלי",
			TitleHighlight: "בסוף התהליך",
			Bullets: []string{
				"גוף חזק ובריא יותר",
				"הרגלים שנשארים לכל החיים",
				"ביטחון עצמי",
			},
			CtaLabel: "אני רוצה להתחיל",
		}
	}
	return models.ResultsSection{
		Locale:         "en",
		Status:         models.StatusPublished,
		TitleTop:       "What you get",
		TitleHighlight: "by the end",
		Bullets: []string{
			"A stronger, healthier body",
			"Habits that last a lifetime",
			"Real confidence",
		},
		CtaLabel: "I want to start",
	}
}

func DefaultAdvantages(locale string) AdvantagesContent {
	if locale == "he" {
		return AdvantagesContent{
			Section: models.AdvantagesSection{
				Locale:      "he",
				Status:      models.StatusPublished,
				Tag:         "יתרונות",
				TitleTop:    "למה דווקא",
				TitleBottom: "התוכנית הזאת",
				Quote:       "שינוי אמיתי מתחיל בצעד אחד.",
				Lead:        "גישה אישית, בלי קיצורי דרך.",
			},
			Cards: []models.AdvantagesCard{
				{Value: "1:1", Description: "ליווי אישי לאורך כל הדרך", Ordering: 1},
				{Value: "24/6", Description: "זמינות לשאלות", Ordering: 2},
			},
		}
	}
	return AdvantagesContent{
		Section: models.AdvantagesSection{
			Locale:      "en",
			Status:      models.StatusPublished,
			Tag:         "Advantages",
			TitleTop:    "Why this",
			TitleBottom: "program works",
			Quote:       "Real change starts with one step.",
			Lead:        "A personal approach, no shortcuts.",
		},
		Cards: []models.AdvantagesCard{
			{Value: "1:1", Description: "Personal guidance all the way", Ordering: 1},
			{Value: "24/6", Description: "Available for questions", Ordering: 2},
		},
	}
}

func DefaultParticipation(locale string) ParticipationContent {
	if locale == "he" {
		return ParticipationContent{
			Section: models.ParticipationSection{
				Locale:          "he",
				Status:          models.StatusPublished,
				Tag:             "מסלולים",
				TitleTop:        "בחרי את",
				TitleBottom:     "המסלול שלך",
				ModalCloseLabel: "סגירה",
			},
			Tariffs: []models.Tariff{
				{
					Title: "מסלול בסיסי",
					Mode:  "ליווי חודשי",
					Bullets: []models.LineItem{
						{Text: "תוכנית אימונים אישית"},
						{Text: "תפריט תזונה"},
					},
					Price:    "₪390",
					CtaLabel: "להצטרפות",
					Ordering: 1,
				},
				{
					Title: "מסלול פרימיום",
					Mode:  "ליווי צמוד",
					Bullets: []models.LineItem{
						{Text: "כל מה שבמסלול הבסיסי"},
						{Text: "שיחות שבועיות"},
					},
					Extras: []models.LineItem{
						{Text: "מקומות מוגבלים", Muted: true},
					},
					Price:    "₪690",
					OldPrice: "₪890",
					CtaLabel: "להצטרפות",
					Ordering: 2,
				},
			},
		}
	}
	return ParticipationContent{
		Section: models.ParticipationSection{
			Locale:          "en",
			Status:          models.StatusPublished,
			Tag:             "Plans",
			TitleTop:        "Choose",
			TitleBottom:     "your plan",
			ModalCloseLabel: "Close",
		},
		Tariffs: []models.Tariff{
			{
				Title: "Basic",
				Mode:  "Monthly coaching",
				Bullets: []models.LineItem{
					{Text: "Personal training plan"},
					{Text: "Nutrition menu"},
				},
				Price:    "$120",
				CtaLabel: "Join now",
				Ordering: 1,
			},
			{
				Title: "Premium",
				Mode:  "Close guidance",
				Bullets: []models.LineItem{
					{Text: "Everything in Basic"},
					{Text: "Weekly calls"},
				},
				Extras: []models.LineItem{
					{Text: "Limited spots", Muted: true},
				},
				Price:    "$210",
				OldPrice: "$260",
				CtaLabel: "Join now",
				Ordering: 2,
			},
		},
	}
}

func DefaultFaq(locale string) FaqContent {
	if locale == "he" {
		return FaqContent{
			Section: models.FaqSection{
				Locale: "he",
				Status: models.StatusPublished,
				Tag:    "שאלות נפוצות",
			},
			Items: []models.FaqItem{
				{Question: "למי התוכנית מתאימה?", Answer: "לכל רמה, מתחילות ומתקדמות.", Ordering: 1},
				{Question: "כמה זמן נמשך הליווי?", Answer: "מינימום חודש, בלי התחייבות ארוכה.", Ordering: 2},
			},
		}
	}
	return FaqContent{
		Section: models.FaqSection{
			Locale: "en",
			Status: models.StatusPublished,
			Tag:    "FAQ",
		},
		Items: []models.FaqItem{
			{Question: "Who is the program for?", Answer: "Any level, beginners and advanced.", Ordering: 1},
			{Question: "How long does coaching last?", Answer: "One month minimum, no long commitment.", Ordering: 2},
		},
	}
}

func DefaultPageHeader(page string, locale string) models.PageHeader {
	switch page {
	case PageAbout:
		if locale == "he" {
			return models.PageHeader{Page: page, Locale: "he", Kicker: "עליי", Title: "נעים להכיר, נוגה", Subtitle: "מאמנת אישית ויועצת תזונה."}
		}
		return models.PageHeader{Page: page, Locale: "en", Kicker: "About", Title: "Hi, I'm Noga", Subtitle: "Personal trainer and nutrition coach."}
	default:
		if locale == "he" {
			return models.PageHeader{Page: page, Locale: "he", Kicker: "בלוג", Title: "הבלוג", Subtitle: "מאמרים, טיפים והשראה."}
		}
		return models.PageHeader{Page: page, Locale: "en", Kicker: "Blog", Title: "The blog", Subtitle: "Articles, tips, and inspiration."}
	}
}

func DefaultSiteSettings() models.SiteSettings {
	return models.SiteSettings{
		ID:           1,
		TelegramUrl:  "https://t.me/nogastudio",
		InstagramUrl: "https://instagram.com/nogastudio",
	}
}
