package planner

import (
	"time"

	"github.com/Alexandru2223/postpilot/internal/calendar"
	"github.com/Alexandru2223/postpilot/internal/domain"
)

type seedPost struct {
	daysFromNow int
	post        domain.Post
}

// seedPosts is the fixed sample set a fresh store starts with. Dates are
// assigned relative to "today" at seed time so the samples always land near
// the current date.
var seedPosts = []seedPost{
	{0, domain.Post{ID: 1, Title: "Transformarea salonului tău de unghii",
		Caption:  "Descoperă cum să transformi salonul tău într-un spațiu modern și atractiv! ✨",
		Hashtags: "#unghii #salon #transformare #beauty #nailart",
		Platform: domain.PlatformInstagram, Time: "10:00", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{0, domain.Post{ID: 2, Title: "Behind the scenes - Procesul de creare",
		Caption:  "Vezi cum se nasc designurile noastre unice! 🎨",
		Hashtags: "#behindthescenes #creare #unghii #naildesign",
		Platform: domain.PlatformFacebook, Time: "15:30", Status: domain.StatusDraft, PostType: domain.PostTypeReel}},
	{0, domain.Post{ID: 3, Title: "Tutorial: Design floral elegant",
		Caption:  "Învață să creezi acest design floral elegant pas cu pas! 🌸",
		Hashtags: "#tutorial #floral #elegant #nailart",
		Platform: domain.PlatformTikTok, Time: "18:00", Status: domain.StatusScheduled, PostType: domain.PostTypeReel}},
	{1, domain.Post{ID: 4, Title: "Tipuri pentru îngrijirea unghiilor",
		Caption:  "5 sfaturi esențiale pentru unghii sănătoase și frumoase! 💅",
		Hashtags: "#ingrijire #unghii #tips #beauty #health",
		Platform: domain.PlatformInstagram, Time: "12:00", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{1, domain.Post{ID: 5, Title: "Client Spotlight - Maria",
		Caption:  "Rezultatul incredibil pentru Maria! Vezi transformarea completă! 👏",
		Hashtags: "#clientspotlight #maria #transformare #rezultate",
		Platform: domain.PlatformInstagram, Time: "14:30", Status: domain.StatusDraft, PostType: domain.PostTypeNormal}},
	{2, domain.Post{ID: 6, Title: "Noua colecție de design-uri",
		Caption:  "Introducem colecția noastră de primăvară! 🌺",
		Hashtags: "#colectie #design #nou #primavara #spring",
		Platform: domain.PlatformInstagram, Time: "11:00", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{2, domain.Post{ID: 7, Title: "Q&A cu specialistul nostru",
		Caption:  "Întrebări și răspunsuri cu specialistul nostru în nail art! 💬",
		Hashtags: "#qa #specialist #nailart #intrebari",
		Platform: domain.PlatformFacebook, Time: "16:00", Status: domain.StatusDraft, PostType: domain.PostTypeReel}},
	{3, domain.Post{ID: 8, Title: "Design geometric modern",
		Caption:  "Design geometric modern pentru femeile care iubesc stilul minimalist! ⬜",
		Hashtags: "#geometric #modern #minimalist #style",
		Platform: domain.PlatformInstagram, Time: "13:00", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{4, domain.Post{ID: 9, Title: "Client Spotlight - Transformări incredibile",
		Caption:  "Transformări incredibile care vor inspira! ✨",
		Hashtags: "#clientspotlight #transformare #incredibil #inspiratie",
		Platform: domain.PlatformInstagram, Time: "10:30", Status: domain.StatusPublished, PostType: domain.PostTypeNormal}},
	{4, domain.Post{ID: 10, Title: "Tutorial: Ombre effect",
		Caption:  "Învață să creezi efectul ombre perfect! 🌈",
		Hashtags: "#tutorial #ombre #effect #nailart",
		Platform: domain.PlatformTikTok, Time: "19:00", Status: domain.StatusScheduled, PostType: domain.PostTypeReel}},
	{5, domain.Post{ID: 11, Title: "Produsele noastre favorite",
		Caption:  "Produsele pe care le folosim în fiecare zi! 🛍️",
		Hashtags: "#produse #favorite #nailart #tools",
		Platform: domain.PlatformInstagram, Time: "15:00", Status: domain.StatusDraft, PostType: domain.PostTypeNormal}},
	{6, domain.Post{ID: 12, Title: "Weekend vibes - Design relaxant",
		Caption:  "Design perfect pentru weekend! 🌅",
		Hashtags: "#weekend #vibes #relaxant #design",
		Platform: domain.PlatformInstagram, Time: "12:30", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{7, domain.Post{ID: 13, Title: "Mistake Monday - Greșeli comune",
		Caption:  "Greșelile pe care le facem toți și cum să le evităm! ❌",
		Hashtags: "#mistakemonday #greseli #comune #tips",
		Platform: domain.PlatformFacebook, Time: "09:00", Status: domain.StatusScheduled, PostType: domain.PostTypeReel}},
	{8, domain.Post{ID: 14, Title: "Tip Tuesday - Sfaturi practice",
		Caption:  "Sfaturi practice pentru unghii perfecte! 💡",
		Hashtags: "#tiptuesday #sfaturi #practice #perfect",
		Platform: domain.PlatformInstagram, Time: "14:00", Status: domain.StatusDraft, PostType: domain.PostTypeNormal}},
	{9, domain.Post{ID: 15, Title: "Transformation Thursday",
		Caption:  "Transformări spectaculoase în fiecare joi! 🔥",
		Hashtags: "#transformationthursday #spectaculos #transformare",
		Platform: domain.PlatformInstagram, Time: "11:30", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{11, domain.Post{ID: 16, Title: "Design pentru ocazii speciale",
		Caption:  "Designuri perfecte pentru ocazii speciale! 🎉",
		Hashtags: "#ocaziispeciale #design #perfect #celebration",
		Platform: domain.PlatformInstagram, Time: "16:30", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{13, domain.Post{ID: 17, Title: "Client Spotlight - Ana",
		Caption:  "Ana și transformarea ei incredibilă! 👑",
		Hashtags: "#clientspotlight #ana #transformare #incredibil",
		Platform: domain.PlatformFacebook, Time: "13:30", Status: domain.StatusPublished, PostType: domain.PostTypeNormal}},
	{15, domain.Post{ID: 18, Title: "Tutorial: French manicure modern",
		Caption:  "French manicure cu un twist modern! 🇫🇷",
		Hashtags: "#tutorial #french #manicure #modern",
		Platform: domain.PlatformTikTok, Time: "17:00", Status: domain.StatusScheduled, PostType: domain.PostTypeReel}},
	{17, domain.Post{ID: 19, Title: "Designuri pentru toate vârstele",
		Caption:  "Designuri care se potrivesc oricărei vârste! 👵👩👧",
		Hashtags: "#designuri #varste #potrivit #fiecare",
		Platform: domain.PlatformInstagram, Time: "10:00", Status: domain.StatusDraft, PostType: domain.PostTypeNormal}},
	{19, domain.Post{ID: 20, Title: "Behind the scenes - Ziua tipică",
		Caption:  "Vezi cum arată o zi tipică în salonul nostru! 📸",
		Hashtags: "#behindthescenes #ziatipica #salon #vlog",
		Platform: domain.PlatformInstagram, Time: "15:00", Status: domain.StatusScheduled, PostType: domain.PostTypeReel}},
	{21, domain.Post{ID: 21, Title: "Client Spotlight - Elena",
		Caption:  "Elena și designul ei unic! ✨",
		Hashtags: "#clientspotlight #elena #design #unic",
		Platform: domain.PlatformInstagram, Time: "12:00", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{24, domain.Post{ID: 22, Title: "Tutorial: Design cu strasuri",
		Caption:  "Cum să adaugi strasuri pentru un efect wow! 💎",
		Hashtags: "#tutorial #strasuri #wow #effect",
		Platform: domain.PlatformTikTok, Time: "18:30", Status: domain.StatusDraft, PostType: domain.PostTypeReel}},
	{27, domain.Post{ID: 23, Title: "Colecția de toamnă",
		Caption:  "Introducem colecția noastră de toamnă! 🍂",
		Hashtags: "#colectie #toamna #autumn #nou",
		Platform: domain.PlatformInstagram, Time: "14:30", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
	{29, domain.Post{ID: 24, Title: "Month in review",
		Caption:  "Săptămâna în review - cele mai populare designuri! 📊",
		Hashtags: "#monthinreview #popular #designuri #review",
		Platform: domain.PlatformFacebook, Time: "11:00", Status: domain.StatusScheduled, PostType: domain.PostTypeNormal}},
}

// Seed populates an empty store with the sample set, dated relative to now.
// A non-empty store is left untouched.
func (s *Store) Seed(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.posts) > 0 {
		return
	}
	for _, sp := range seedPosts {
		p := sp.post
		p.Date = calendar.DateKey(now.AddDate(0, 0, sp.daysFromNow))
		s.posts = append(s.posts, p)
	}
}
