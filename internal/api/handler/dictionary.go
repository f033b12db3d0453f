package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/locale"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
)

// DictionaryHandler handles word lookups
type DictionaryHandler struct {
	service *dictionary.Service
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(service *dictionary.Service) *DictionaryHandler {
	return &DictionaryHandler{service: service}
}

// Lookup handles GET /api/v1/dictionary/{locale}/words/{word}
func (h *DictionaryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	localeID, err := locale.Normalize(vars["locale"])
	if err != nil {
		WriteError(w, err)
		return
	}
	word := vars["word"]

	folded, ok, err := h.service.Lookup(localeID, word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Word{
		Locale: localeID,
		Word:   word,
		Folded: folded,
		Prefix: ok,
		Valid:  h.service.IsValidWord(localeID, word),
	})
}
