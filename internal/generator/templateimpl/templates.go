package templateimpl

import (
	"fmt"
	"strings"

	"github.com/Alexandru2223/postpilot/internal/domain"
	"github.com/Alexandru2223/postpilot/pkg/formatter"
)

func normalContent(description string, platform domain.Platform) domain.GeneratedContent {
	tag := formatter.Hashtag(description)
	platformTag := "#" + strings.ToLower(string(platform))

	return domain.GeneratedContent{
		Title: fmt.Sprintf("Transformarea %s - Ghid complet", description),
		Caption: fmt.Sprintf("✨ Descoperă secretele pentru a transforma %s într-un business de succes!\n\n"+
			"💡 Sfaturi practice și strategii testate\n"+
			"🎯 Rezultate garantate\n\n"+
			"%s #business #success %s", description, tag, platformTag),
		Hashtags: []string{tag, "#business", "#success", platformTag, "#growth", "#strategy"},
	}
}

func reelContent(description string, platform domain.Platform) domain.GeneratedContent {
	tag := formatter.Hashtag(description)
	platformTag := "#" + strings.ToLower(string(platform))

	return domain.GeneratedContent{
		Title: fmt.Sprintf("🎬 Video: %s - Transformare completă", description),
		Caption: fmt.Sprintf("🎬 Noul meu video despre %s!\n\n"+
			"✨ Îți arăt pas cu pas cum să transformi %s într-un business de succes\n\n"+
			"🎯 Rezultate garantate în doar câteva săptămâni!\n\n"+
			"📱 Urmărește pentru mai multe sfaturi practice\n\n"+
			"%s #video #reel %s #business #success", description, description, tag, platformTag),
		Hashtags: []string{
			tag, "#video", "#reel", platformTag,
			"#business", "#success", "#transformation", "#tips",
		},
		VideoScript: videoScript(description, platformTag, tag),
		VideoIdeas:  videoIdeas(description),
	}
}

func videoScript(description, platformTag, tag string) string {
	return fmt.Sprintf(`🎬 SCRIPT VIDEO: %s

📱 INTRO (0-3 secunde):
"Bună! Astăzi îți arăt cum să transformi %s într-un business de succes!"

🎯 MAIN CONTENT (3-15 secunde):
• Arată procesul pas cu pas
• Demonstrează rezultatele
• Împărtășește sfaturi practice

💡 TIPURI VIZUALE:
• Folosește text overlay pentru puncte cheie
• Adaugă emoji-uri pentru engagement
• Menține ritmul rapid și dinamic

🎬 CALL TO ACTION (15-20 secunde):
"Urmărește pentru mai multe sfaturi despre %s!"

%s #video #reel %s #business #success`,
		strings.ToUpper(description), description, description, tag, platformTag)
}

// videoIdeas always yields exactly ten entries, each mentioning the
// description.
func videoIdeas(description string) []string {
	return []string{
		fmt.Sprintf("\"Înainte și după\" - Arată transformarea %s", description),
		fmt.Sprintf("\"Behind the scenes\" - Procesul de creare %s", description),
		fmt.Sprintf("\"5 sfaturi rapide\" pentru %s", description),
		fmt.Sprintf("\"Povestea mea\" - Cum am început cu %s", description),
		fmt.Sprintf("\"Q&A\" - Întrebări frecvente despre %s", description),
		fmt.Sprintf("\"Tutorial pas cu pas\" - Cum să faci %s", description),
		fmt.Sprintf("\"Mistake Monday\" - Greșeli comune în %s", description),
		fmt.Sprintf("\"Tip Tuesday\" - Sfaturi pentru %s", description),
		fmt.Sprintf("\"Transformation Thursday\" - Rezultate %s", description),
		fmt.Sprintf("\"Weekend vibes\" - Relaxare și %s", description),
	}
}

func suggestionsFor(platform domain.Platform, category string) domain.Suggestion {
	tag := formatter.Hashtag(category)
	platformTag := "#" + strings.ToLower(string(platform))

	return domain.Suggestion{
		Hashtags: []string{tag, platformTag, "#business", "#success", "#growth"},
		Captions: []string{
			fmt.Sprintf("✨ Descoperă tot ce trebuie să știi despre %s!", category),
			fmt.Sprintf("💡 Sfatul zilei pentru %s - salvează postarea!", category),
			fmt.Sprintf("🎯 Cum să obții rezultate reale cu %s", category),
		},
		PostIdeas: []string{
			fmt.Sprintf("Ghid pentru începători: %s", category),
			fmt.Sprintf("Top 5 greșeli în %s și cum le eviți", category),
			fmt.Sprintf("Client Spotlight - rezultate cu %s", category),
		},
		VideoIdeas: videoIdeas(category),
	}
}
