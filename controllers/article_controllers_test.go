package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAllArticlesNewestFirst(t *testing.T) {
	r, _ := setupServer(t)

	w, resp := getJSON(t, r, "/articles")
	assert.Equal(t, http.StatusOK, w.Code)

	articles := resp["data"].([]interface{})
	assert.Len(t, articles, 3)

	first := articles[0].(map[string]interface{})
	assert.Equal(t, "soiree-truffe-2024", first["slug"])
}

func TestGetArticleBySlug(t *testing.T) {
	r, _ := setupServer(t)

	w, resp := getJSON(t, r, "/articles/etoile-michelin-2024")
	assert.Equal(t, http.StatusOK, w.Code)

	article := resp["data"].(map[string]interface{})
	assert.Equal(t, "Nous conservons notre Étoile Michelin", article["title"])
	assert.Equal(t, "distinction", article["category"])
}

func TestGetArticleUnknownSlug(t *testing.T) {
	r, _ := setupServer(t)

	w, resp := getJSON(t, r, "/articles/plat-du-jour-1999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Article introuvable", resp["message"])
}
