// Package catalog holds the static reference data the fixture generator
// samples from: the bakery product catalog and the customer roster. Both are
// ordered, read-only tables; sampling code relies on stable indexes.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTable  = errors.New("reference table is empty")
	ErrDuplicateID = errors.New("reference table has duplicate id")
)

var products = []Product{
	{1, "Bánh Kem Socola", 350000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764425119/banh-kem-socola_rbqnxa.jpg"},
	{2, "Bánh Kem Vanilla", 300000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764441041/banh-kem-vanilla_seyzex.jpg"},
	{3, "Bánh Kem Dâu Tằm", 320000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764428069/Banh-kem-dau-tam_rrkaat.jpg"},
	{4, "Bánh Kem Matcha", 330000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764428123/banh-kem-matcha_x70qyh.jpg"},
	{5, "Bánh Kem Caramel Muối", 360000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764428197/banh-kem-caramel-muoi_umt7vv.png"},
	{6, "Cupcake Mix Berry", 38000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764437679/cupcake-mix-berry_jdf22k.jpg"},
	{7, "Cupcake Socola", 36000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764437975/cupcake-socola_suqmht.jpg"},
	{8, "Cupcake Vanilla", 35000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764438032/cupcake-vanilla_epwmqi.jpg"},
	{9, "Cupcake Red Velvet", 40000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764438121/cupcake-red-velvet_gubyho.jpg"},
	{10, "Cupcake Carrot", 37000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764438326/cupcake-carrot_ic7n3c.jpg"},
	{11, "Tart Trứng Hồng Kông", 30000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764438811/tart-trung-hong-kong_adnwhc.jpg"},
	{12, "Tart Dâu Tây", 45000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764438988/tart-dau-tay_v7rnii.jpg"},
	{13, "Tart Socola", 42000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764439189/tart-chocolate_qb5con.jpg"},
	{14, "Tart Chanh Dây", 40000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764441130/tart-chanh-day_mfjeas.jpg"},
	{15, "Tart Phô Mai", 48000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764439389/tart-pho-mai_jmyltk.jpg"},
	{16, "Macaron Mix vị", 45000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764439546/macaron-mix-vi_wrxllw.jpg"},
	{17, "Macaron Socola", 42000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764439592/macaron-socola_dpi8ll.jpg"},
	{18, "Macaron Vanilla", 40000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764439640/macaron-vanilla_hbrtru.jpg"},
	{19, "Macaron Matcha", 44000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764439798/macaron-matcha_mqban9.jpg"},
	{20, "Macaron Dâu Tây", 46000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764439965/macaron-dau-tay_ymn8zy.jpg"},
	{21, "Panna Cotta Dâu Tây", 55000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440227/panna-cotta_dau_tay_pnhgcw.jpg"},
	{22, "Cheesecake Chanh Dây", 65000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440308/cheesecake-chanh-day_e19ono.jpg"},
	{23, "Tiramisu Cacao", 60000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440367/tiramisu-cacao_lpshd1.jpg"},
	{24, "Creme Brulee", 52000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440441/creme-brulee_bj2bcq.jpg"},
	{25, "Mochi Kem Trà Xanh", 45000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440503/mochi-kem-tra-xanh_vmwkcl.jpg"},
	{26, "Brownie Hạnh Nhân", 32000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440549/brownie-hanh-nhan_zn8gj0.jpg"},
	{27, "Cookie Socola Chip", 28000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440608/cookie-socola-chip_dboejc.jpg"},
	{28, "Bánh Quy Matcha", 30000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440660/banh-quy-matcha_sv7chq.jpg"},
	{29, "Bánh Quy Dừa", 25000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440721/banh-quy-dua_oc8hnh.jpg"},
	{30, "Bánh Quy Hạnh Nhân", 35000, "https://res.cloudinary.com/dgm63pzn4/image/upload/v1764440780/banh-quy-hanh-nhan_g8iyc8.jpg"},
}

// Customer ids start at 4; lower ids belong to seeded staff accounts.
var customers = []Customer{
	{4, "Alice Nguyen", "12 Trần Hưng Đạo, Q1, TP.HCM"},
	{5, "Bob Tran", "45 Nguyễn Huệ, Q1, TP.HCM"},
	{6, "Charlie Pham", "78 Lê Lợi, Q1, TP.HCM"},
	{7, "Daisy Vu", "23 Lý Tự Trọng, Q1, TP.HCM"},
	{8, "Ethan Le", "56 Pasteur, Q3, TP.HCM"},
	{9, "Flora Dang", "89 Võ Văn Tần, Q3, TP.HCM"},
	{10, "George Hoang", "11 Nguyễn Thị Minh Khai, Q1, TP.HCM"},
	{11, "Hannah Do", "35 Hai Bà Trưng, Q1, TP.HCM"},
	{12, "Isaac Truong", "67 Nam Kỳ Khởi Nghĩa, Q3, TP.HCM"},
	{13, "Jasmine Ly", "101 Nguyễn Đình Chiểu, Q3, TP.HCM"},
	{14, "Kevin Lam", "202 Điện Biên Phủ, Q3, TP.HCM"},
	{15, "Lily Phan", "303 Võ Văn Kiệt, Q5, TP.HCM"},
}

// Products returns the product catalog in id order.
func Products() []Product {
	return products
}

// Customers returns the customer roster in id order.
func Customers() []Customer {
	return customers
}

// Validate checks the embedded tables before a generation run. Generation
// refuses to start on bad reference data rather than emitting partial SQL.
func Validate() error {
	if len(products) == 0 {
		return fmt.Errorf("products: %w", ErrEmptyTable)
	}
	if len(customers) == 0 {
		return fmt.Errorf("customers: %w", ErrEmptyTable)
	}

	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("products: id %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}

	seen = make(map[int]struct{}, len(customers))
	for _, c := range customers {
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("customers: id %d: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
