package document

import "github.com/serenitypath/hospital-api/internal/model"

// SeedDocument is the initial state written when no document exists yet. The
// defaults match the hospital's launch content.
func SeedDocument() model.Document {
	doc := model.Document{
		Content: model.ContentData{
			HospitalName: model.LocalizedString{EN: "Serenity Path", AR: "طريق الصفاء"},
			Tagline:      model.LocalizedString{EN: "Hospital Center", AR: "مركز المستشفى"},
			Hero: model.HeroContent{
				Title:    model.LocalizedString{EN: "Healing Begins with Compassion", AR: "الشفاء يبدأ بالرحمة"},
				Subtitle: model.LocalizedString{EN: "Leading Mental Health & Addiction Recovery Center", AR: "المركز الرائد للصحة النفسية وعلاج الإدمان"},
				Image:    "https://images.unsplash.com/photo-1576091160550-2173dad99961?auto=format&fit=crop&q=80&w=2070",
			},
			About: model.AboutContent{
				Story: model.LocalizedString{
					EN: "Founded in 2010, Serenity Path has been a beacon of hope for thousands of individuals seeking recovery and mental wellness. Our holistic approach ensures that every patient receives personalized care in a tranquil environment.",
					AR: "تأسست مستشفى طريق الصفاء في عام 2010، وكانت منارة للأمل لآلاف الأفراد الذين يسعون للتعافي والعافية النفسية. يضمن نهجنا الشامل حصول كل مريض على رعاية شخصية في بيئة هادئة.",
				},
				Mission: model.LocalizedString{EN: "To provide world-class mental healthcare with empathy.", AR: "تقديم رعاية صحية نفسية عالمية المستوى بتعاطف."},
				Vision:  model.LocalizedString{EN: "A world where mental wellness is accessible to all.", AR: "عالم تتوفر فيه العافية النفسية للجميع."},
				Image:   "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?auto=format&fit=crop&q=80&w=2053",
			},
			Contact: model.ContactContent{
				Email:   "info@serenitypath.com",
				Phone:   "+1 234 567 890",
				Address: model.LocalizedString{EN: "123 Wellness Ave, Serenity City", AR: "123 شارع العافية، مدينة الصفاء"},
				Socials: model.SocialChannels{
					Facebook:  "https://facebook.com",
					Twitter:   "https://twitter.com",
					Instagram: "https://instagram.com",
				},
			},
		},
		Services: []model.Service{
			{
				ID:          "1",
				Title:       model.LocalizedString{EN: "Addiction Recovery", AR: "علاج الإدمان"},
				Description: model.LocalizedString{EN: "Evidence-based programs for chemical dependency.", AR: "برامج قائمة على الأدلة للإدمان الكيميائي."},
				Icon:        "💊",
				Image:       "https://images.unsplash.com/photo-1527137342181-19aab11a8ee1?auto=format&fit=crop&q=80&w=2070",
			},
			{
				ID:          "2",
				Title:       model.LocalizedString{EN: "Psychotherapy", AR: "العلاج النفسي"},
				Description: model.LocalizedString{EN: "Individual and group sessions with experts.", AR: "جلسات فردية وجماعية مع خبراء."},
				Icon:        "🧠",
				Image:       "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?auto=format&fit=crop&q=80&w=2070",
			},
		},
		Programs: []model.Program{
			{
				ID:          "1",
				Title:       model.LocalizedString{EN: "Youth Wellness", AR: "عافية الشباب"},
				Description: model.LocalizedString{EN: "Specialized mental health support for teens.", AR: "دعم نفسي متخصص للمراهقين."},
				Schedule:    model.LocalizedString{EN: "Mon-Fri, 9AM - 2PM", AR: "الاثنين - الجمعة، 9 صباحاً - 2 ظهراً"},
				Image:       "https://images.unsplash.com/photo-1529333166437-7750a6dd5a70?auto=format&fit=crop&q=80&w=2069",
			},
		},
		Facilities: []model.Facility{
			{
				ID:          "1",
				Name:        model.LocalizedString{EN: "Tranquility Gardens", AR: "حدائق الهدوء"},
				Description: model.LocalizedString{EN: "Lush outdoor spaces designed for meditative walks and therapy sessions.", AR: "مساحات خارجية خضراء مصممة للمشي التأملي وجلسات العلاج."},
				Image:       "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?auto=format&fit=crop&q=80&w=2000",
			},
			{
				ID:          "2",
				Name:        model.LocalizedString{EN: "State-of-the-Art Therapy Wing", AR: "جناح العلاج الحديث"},
				Description: model.LocalizedString{EN: "Modern, soundproof rooms equipped for various types of psychotherapy.", AR: "غرف حديثة وعازلة للصوت مجهزة لأنواع مختلفة من العلاج النفسي."},
				Image:       "https://images.unsplash.com/photo-1551601651-2a8555f1a136?auto=format&fit=crop&q=80&w=2000",
			},
		},
		Team: []model.TeamMember{
			{
				ID:    "1",
				Name:  model.LocalizedString{EN: "Dr. Sarah Johnson", AR: "د. سارة جونسون"},
				Role:  model.LocalizedString{EN: "Chief Psychiatrist", AR: "كبير الأطباء النفسيين"},
				Bio:   model.LocalizedString{EN: "Expert in neuro-psychology with 15 years experience.", AR: "خبيرة في علم النفس العصبي مع 15 عاماً من الخبرة."},
				Email: "s.johnson@serenitypath.com",
				Phone: "555-0101",
				Image: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?auto=format&fit=crop&q=80&w=2070",
				Availability: []model.AvailabilitySlot{
					{ID: "a1", Day: model.Monday, StartTime: "09:00", EndTime: "12:00"},
					{ID: "a2", Day: model.Wednesday, StartTime: "14:00", EndTime: "17:00"},
				},
			},
		},
		Music: model.MusicConfig{
			SourceType: model.MusicSourceYouTube,
			YouTubeID:  "77ZozI0rw7w",
			MP3Data:    "data:audio/mp3;base64,SUQzBAAAAAAAI1RTU0UAAAAPAHRoZSBtcDMuY29tAABUQUxCAAAADABUaGUgQ2hpbWUAAFRQRTEAAAAMAFNlcmVuaXR5IFBhdGgAAFRJVDIAAAAMAEhvc3BpdGFsIEh1bQAA",
			IsEnabled:  false,
			Loop:       true,
			Volume:     40,
		},
		ChatConfig: model.ChatConfig{
			SystemInstructions: "You are Cleo, a professional and empathetic assistant for Serenity Path Hospital. Always respond in short, kind answers. Show deep empathy and hope. Focus on an optimistic future. Offer online sessions or booking a meeting. Help in site navigation. Do not provide detailed medical advice. Be cheerful and save lives.",
			Prompts: model.PersonaPrompts{
				Patient: "Focus on immediate care, empathy, and scheduling guidance.",
				Family:  "Focus on support resources, visiting hours, and educational content.",
				Inquiry: "Focus on general information about services and insurance.",
			},
			AINote:           model.LocalizedString{EN: "Cleo is Online", AR: "كليو متصلة الآن"},
			LiveAgentEnabled: true,
			LiveAgentStatus:  model.LocalizedString{EN: "Live Support Available", AR: "الدعم المباشر متاح"},
		},
	}
	doc.Normalize()
	return doc
}
