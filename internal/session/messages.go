package session

// Messages are the fixed user-facing texts shown for transport failures
type Messages struct {
	SearchFailed  string
	DetailsFailed string
}

var messagesByLocale = map[string]Messages{
	"en": {
		SearchFailed:  "Failed to search movies.",
		DetailsFailed: "Failed to load details.",
	},
	"pt-BR": {
		SearchFailed:  "Erro ao buscar filmes.",
		DetailsFailed: "Erro ao carregar detalhes.",
	},
}

// MessagesFor returns the messages for locale, falling back to English
func MessagesFor(locale string) Messages {
	if m, ok := messagesByLocale[locale]; ok {
		return m
	}
	return messagesByLocale["en"]
}
