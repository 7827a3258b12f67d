package content

import (
	"context"
	"strings"

	"github.com/gsschool/backend/internal/store"
)

type j = map[string]interface{}

// Seed creates every document the site needs with its default content.
// Existing documents are never touched, so it runs unconditionally at boot.
func Seed(ctx context.Context, st store.Store) error {
	defaults := map[string]interface{}{
		"home": j{
			"hero": j{
				"backgroundImage": "/building.png",
				"titleLine1":      "Gaurishankar English Boarding",
				"titleLine2":      "Secondary School",
				"tagline":         "Nurturing Excellence • Inspiring Innovation • Building Character",
			},
			"leadership": []j{
				{"name": "Chairman's Message", "title": "Janardan Nepal", "message": "I urge all potential students... Wish you all have a wonderful experience in Gaurishankar.", "image": "/janardan.jpg"},
				{"name": "Director's Message", "title": "Dhaneshwor Sah", "message": "We embrace modern teaching methodologies...", "image": "/Dhaneshwor.jpg"},
				{"name": "Principal's Message", "title": "Mahesh Thapa", "message": "We prioritize your success and well-being...", "image": "/mahesh.jpg"},
			},
		},
		"about": j{
			"header": j{
				"title":    "About Us",
				"subtitle": "Discover our journey of educational excellence, values that guide us, and the vision that drives us forward",
			},
			"values":     []j{},
			"objectives": []j{},
			"timeline":   []j{},
		},
		"footer": j{
			"about": j{
				"title":       "Gaurishankar College",
				"description": "Nurturing minds, shaping futures. Excellence in education since our establishment, providing quality learning experiences in Science, Management, and Law.",
				"under":       "Under the Management of Hillside College Of Engineering",
				"logo":        "/logo.png",
			},
			"quickLinks": []j{
				{"name": "About Us", "path": "/about"},
				{"name": "Gallery", "path": "/gallery"},
				{"name": "Download Booklet", "path": "/faculty"},
				{"name": "Download Calender", "path": "/admissions"},
				{"name": "Download Brochure", "path": "/contact"},
			},
			"contact": j{
				"address": []string{"Mahalaxmi-2, Imadol, Balkumari", "Lalitpur, Nepal"},
				"phone":   "01-5203132",
				"email":   "schoolgaurishankar@gmail.com",
			},
			"social": j{
				"facebook":  "https://www.facebook.com/profile.php?id=100063762841241",
				"instagram": "#",
				"youtube":   "#",
			},
			"legal": j{
				"copyright": "© 2025 Gaurishankar English Boarding Secondary School/College. All rights reserved. Madani Technology Pvt. Ltd.",
				"privacy":   "#",
				"terms":     "#",
			},
		},
		"notices": []j{},
		"gallery": []j{},
	}

	// the remaining pages share a generic skeleton
	for _, k := range pageKeys {
		if _, ok := defaults[k]; ok {
			continue
		}
		defaults[k] = j{
			"header":  j{"title": strings.ToUpper(k[:1]) + k[1:], "subtitle": ""},
			"content": "",
			"images":  []string{},
		}
	}

	for name, initial := range defaults {
		if err := st.Ensure(ctx, name, initial); err != nil {
			return err
		}
	}
	return nil
}
