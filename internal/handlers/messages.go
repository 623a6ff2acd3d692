package handlers

// Messages is the catalog of client-visible error strings. The defaults
// are the French strings of the reference deployment; a deployment can
// inject a translated catalog without touching the handlers.
type Messages struct {
	Unauthorized       string
	InvalidCredentials string
	InvalidBody        string
	InvalidID          string
	RequiredFields     string
	PointNotFound      string
	SuggestionNotFound string
	Server             string
}

func DefaultMessages() Messages {
	return Messages{
		Unauthorized:       "Non autorise.",
		InvalidCredentials: "Identifiants invalides.",
		InvalidBody:        "Requete invalide.",
		InvalidID:          "Identifiant invalide.",
		RequiredFields:     "Nom, latitude et longitude sont obligatoires.",
		PointNotFound:      "Point introuvable.",
		SuggestionNotFound: "Proposition introuvable.",
		Server:             "Erreur serveur.",
	}
}
