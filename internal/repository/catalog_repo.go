package repository

import (
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// seedProducts is the fixed jewelry catalog. Products are never created,
// updated, or deleted at runtime.
var seedProducts = []domain.Product{
	{
		ID:          1,
		Name:        "Royal Kundan Necklace Set",
		Price:       12499,
		Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400&h=400&fit=crop",
		Description: "Elegant kundan necklace set with matching earrings, perfect for festive occasions.",
	},
	{
		ID:          2,
		Name:        "Gold Plated Jhumka Earrings",
		Price:       2999,
		Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&h=400&fit=crop",
		Description: "Traditional gold plated jhumka earrings with intricate detailing.",
	},
	{
		ID:          3,
		Name:        "Diamond Solitaire Ring",
		Price:       34999,
		Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=400&h=400&fit=crop",
		Description: "Stunning diamond solitaire ring set in 18K white gold.",
	},
	{
		ID:          4,
		Name:        "Pearl Strand Bracelet",
		Price:       4599,
		Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=400&h=400&fit=crop",
		Description: "Delicate freshwater pearl bracelet with sterling silver clasp.",
	},
	{
		ID:          5,
		Name:        "Temple Gold Bangle Set",
		Price:       8999,
		Image:       "https://images.unsplash.com/photo-1601121141461-9d6647bca1ed?w=400&h=400&fit=crop",
		Description: "Set of 4 traditional temple design gold plated bangles.",
	},
	{
		ID:          6,
		Name:        "Emerald Drop Pendant",
		Price:       15999,
		Image:       "https://images.unsplash.com/photo-1588444837495-c6cfeb53f32d?w=400&h=400&fit=crop",
		Description: "Natural emerald pendant with diamond halo in 14K gold setting.",
	},
	{
		ID:          7,
		Name:        "Silver Anklet Pair",
		Price:       1899,
		Image:       "https://images.unsplash.com/photo-1573408301185-9146fe634ad0?w=400&h=400&fit=crop",
		Description: "Pure silver anklets with delicate bell charms and floral pattern.",
	},
	{
		ID:          8,
		Name:        "Ruby Studded Maang Tikka",
		Price:       6499,
		Image:       "https://images.unsplash.com/photo-1602751584552-8ba73aad10e1?w=400&h=400&fit=crop",
		Description: "Bridal maang tikka adorned with rubies and polki diamonds.",
	},
}

// StaticCatalogRepository serves the fixed in-memory catalog. All reads are
// lock-free since the backing slice is immutable after construction.
type StaticCatalogRepository struct {
	products []domain.Product
	byID     map[int]*domain.Product
	log      *logrus.Logger
}

func NewStaticCatalogRepository(logger *logrus.Logger) *StaticCatalogRepository {
	repo := &StaticCatalogRepository{
		products: seedProducts,
		byID:     make(map[int]*domain.Product, len(seedProducts)),
		log:      logger,
	}
	for i := range repo.products {
		repo.byID[repo.products[i].ID] = &repo.products[i]
	}
	logger.Infof("Catalog seeded with %d products", len(repo.products))
	return repo
}

func (r *StaticCatalogRepository) ListProducts(filter domain.PriceFilter) []domain.Product {
	matched := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (r *StaticCatalogRepository) GetProductByID(id int) (*domain.Product, error) {
	if id <= 0 {
		return nil, domain.NotFound("Product with ID %d not found", id)
	}
	product, ok := r.byID[id]
	if !ok {
		return nil, domain.NotFound("Product with ID %d not found", id)
	}
	return product, nil
}
