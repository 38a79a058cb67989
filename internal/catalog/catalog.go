package catalog

import "github.com/minhtridev/edustore-backend/pkg/enums"

// Product is a catalog entry. The catalog is compile-time data: products are
// digital goods with no inventory, so there is nothing to persist.
type Product struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Grade         int                 `json:"grade,omitempty"`
	Types         []enums.ProductType `json:"types"`
	Price         int64               `json:"price"`
	OriginalPrice int64               `json:"original_price,omitempty"`
	Rating        float64             `json:"rating"`
	Reviews       int                 `json:"reviews"`
	Image         string              `json:"image"`
}

// HasType reports whether the product carries the given type tag.
func (p Product) HasType(t enums.ProductType) bool {
	for _, candidate := range p.Types {
		if candidate == t {
			return true
		}
	}
	return false
}

var products = []Product{
	{
		ID:            "sach-scratch-lop-3",
		Title:         "Sách Scratch Lớp 3 - Bước Đầu Lập Trình",
		Grade:         3,
		Types:         []enums.ProductType{enums.ProductTypeBook},
		Price:         150000,
		OriginalPrice: 200000,
		Rating:        4.8,
		Reviews:       124,
		Image:         "/images/products/sach-scratch-lop-3.jpg",
	},
	{
		ID:            "sach-scratch-lop-4",
		Title:         "Sách Scratch Lớp 4 - Tư Duy Sáng Tạo",
		Grade:         4,
		Types:         []enums.ProductType{enums.ProductTypeBook},
		Price:         165000,
		OriginalPrice: 220000,
		Rating:        4.9,
		Reviews:       98,
		Image:         "/images/products/sach-scratch-lop-4.jpg",
	},
	{
		ID:            "sach-scratch-lop-5",
		Title:         "Sách Scratch Lớp 5 - Dự Án Nâng Cao",
		Grade:         5,
		Types:         []enums.ProductType{enums.ProductTypeBook},
		Price:         180000,
		OriginalPrice: 240000,
		Rating:        4.9,
		Reviews:       87,
		Image:         "/images/products/sach-scratch-lop-5.jpg",
	},
	{
		ID:      "slide-scratch-lop-3",
		Title:   "Bộ Slide Bài Giảng Scratch Lớp 3",
		Grade:   3,
		Types:   []enums.ProductType{enums.ProductTypeSlides},
		Price:   120000,
		Rating:  4.7,
		Reviews: 56,
		Image:   "/images/products/slide-scratch-lop-3.jpg",
	},
	{
		ID:      "slide-scratch-lop-4",
		Title:   "Bộ Slide Bài Giảng Scratch Lớp 4",
		Grade:   4,
		Types:   []enums.ProductType{enums.ProductTypeSlides},
		Price:   120000,
		Rating:  4.7,
		Reviews: 43,
		Image:   "/images/products/slide-scratch-lop-4.jpg",
	},
	{
		ID:      "slide-scratch-lop-5",
		Title:   "Bộ Slide Bài Giảng Scratch Lớp 5",
		Grade:   5,
		Types:   []enums.ProductType{enums.ProductTypeSlides},
		Price:   120000,
		Rating:  4.6,
		Reviews: 38,
		Image:   "/images/products/slide-scratch-lop-5.jpg",
	},
	{
		ID:      "video-scratch-co-ban",
		Title:   "Khóa Video Scratch Cơ Bản",
		Types:   []enums.ProductType{enums.ProductTypeVideo},
		Price:   250000,
		Rating:  4.8,
		Reviews: 215,
		Image:   "/images/products/video-scratch-co-ban.jpg",
	},
	{
		ID:      "video-scratch-nang-cao",
		Title:   "Khóa Video Scratch Nâng Cao",
		Types:   []enums.ProductType{enums.ProductTypeVideo},
		Price:   350000,
		Rating:  4.9,
		Reviews: 167,
		Image:   "/images/products/video-scratch-nang-cao.jpg",
	},
	{
		ID:            "robotics-starter-kit",
		Title:         "Bộ Kit Robotics Starter Cho Học Sinh",
		Types:         []enums.ProductType{enums.ProductTypeRobotics},
		Price:         1250000,
		OriginalPrice: 1500000,
		Rating:        4.8,
		Reviews:       72,
		Image:         "/images/products/robotics-starter-kit.jpg",
	},
	{
		ID:            "combo-scratch-lop-3",
		Title:         "Combo Scratch Lớp 3 - Sách + Slide + Video",
		Grade:         3,
		Types:         []enums.ProductType{enums.ProductTypeCombo, enums.ProductTypeBook, enums.ProductTypeSlides, enums.ProductTypeVideo},
		Price:         400000,
		OriginalPrice: 520000,
		Rating:        4.9,
		Reviews:       64,
		Image:         "/images/products/combo-scratch-lop-3.jpg",
	},
	{
		ID:            "combo-scratch-lop-4",
		Title:         "Combo Scratch Lớp 4 - Sách + Slide + Video",
		Grade:         4,
		Types:         []enums.ProductType{enums.ProductTypeCombo, enums.ProductTypeBook, enums.ProductTypeSlides, enums.ProductTypeVideo},
		Price:         420000,
		OriginalPrice: 555000,
		Rating:        4.8,
		Reviews:       51,
		Image:         "/images/products/combo-scratch-lop-4.jpg",
	},
	{
		ID:            "combo-scratch-lop-5",
		Title:         "Combo Scratch Lớp 5 - Sách + Slide + Video",
		Grade:         5,
		Types:         []enums.ProductType{enums.ProductTypeCombo, enums.ProductTypeBook, enums.ProductTypeSlides, enums.ProductTypeVideo},
		Price:         450000,
		OriginalPrice: 590000,
		Rating:        4.9,
		Reviews:       47,
		Image:         "/images/products/combo-scratch-lop-5.jpg",
	},
}

// All returns every catalog product in display order.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Find returns the product with the given id.
func Find(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Filter returns products matching the provided criteria. Zero grade and
// empty type match everything.
func Filter(grade int, productType enums.ProductType) []Product {
	var out []Product
	for _, p := range products {
		if grade != 0 && p.Grade != grade {
			continue
		}
		if productType != "" && !p.HasType(productType) {
			continue
		}
		out = append(out, p)
	}
	return out
}
