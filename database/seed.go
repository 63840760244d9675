package database

import (
	"time"

	"github.com/lexcellence/reservation-app/models"
	"gorm.io/gorm"
)

// SeedArticles loads the news catalog. Idempotent: existing slugs are left
// untouched so redeploys do not duplicate or overwrite edited content.
func SeedArticles(db *gorm.DB) error {
	for _, article := range articleCatalog() {
		err := db.Where(models.Article{Slug: article.Slug}).
			FirstOrCreate(&article).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func articleCatalog() []models.Article {
	return []models.Article{
		{
			Slug:    "menu-automne-2024",
			Title:   "Nouveau Menu d'Automne",
			Excerpt: "Découvrez notre nouvelle carte célébrant les saveurs de l'automne avec des produits de saison soigneusement sélectionnés.",
			Content: "Notre Chef a créé une nouvelle carte qui met à l'honneur les produits d'automne les plus nobles.\n\n" +
				"Parmi les nouveautés, vous pourrez découvrir notre Velouté de Butternut aux châtaignes, notre Pigeon des Dombes en deux cuissons, et notre irrésistible Tarte Tatin revisitée.\n\n" +
				"Chaque plat a été pensé pour offrir une expérience gustative unique, mêlant tradition française et touches de modernité.\n\n" +
				"Réservez dès maintenant pour découvrir ces créations d'exception.",
			Image:       "/images/actualites/menu-automne.jpg",
			Category:    "menu",
			PublishedAt: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			Author:      "Chef Pierre Dubois",
		},
		{
			Slug:    "etoile-michelin-2024",
			Title:   "Nous conservons notre Étoile Michelin",
			Excerpt: "C'est avec une immense fierté que nous vous annonçons le maintien de notre distinction au Guide Michelin 2024.",
			Content: "L'équipe de L'Excellence est honorée d'annoncer que notre restaurant conserve son étoile au prestigieux Guide Michelin pour l'année 2024.\n\n" +
				"Cette reconnaissance récompense le travail passionné de toute notre équipe, en cuisine comme en salle, et notre engagement constant pour l'excellence culinaire.\n\n" +
				"Nous tenons à remercier chaleureusement nos clients fidèles qui nous font confiance année après année.",
			Image:       "/images/actualites/michelin.jpg",
			Category:    "distinction",
			PublishedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Author:      "L'équipe L'Excellence",
		},
		{
			Slug:    "soiree-truffe-2024",
			Title:   "Soirée Dégustation Truffe Noire",
			Excerpt: "Rejoignez-nous pour une soirée exceptionnelle dédiée à la truffe noire du Périgord, or noir de la gastronomie.",
			Content: "Le vendredi 15 décembre, nous vous invitons à une soirée d'exception entièrement dédiée à la truffe noire du Périgord.\n\n" +
				"Au programme :\n- Champagne de bienvenue\n- Menu dégustation en 7 services\n- Accord mets et vins\n- Présentation par notre Chef\n\n" +
				"Places limitées à 30 convives. Réservation obligatoire.\n\n" +
				"Tarif : 280€ par personne, vins inclus.",
			Image:       "/images/actualites/truffe.jpg",
			Category:    "evenement",
			PublishedAt: time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC),
			Author:      "Chef Pierre Dubois",
		},
	}
}
