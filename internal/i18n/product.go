package i18n

import (
	"regexp"

	"github.com/iliyamo/progear-storefront/internal/model"
)

var categoryMN = map[string]string{
	"Electronics":      "Электроник",
	"Jewelry":          "Үнэт эдлэл",
	"Jackets":          "Хүрэм",
	"Women's Clothing": "Эмэгтэй хувцас",
	"accessories":      "Нэмэлт хэрэгсэл",
}

type wordRule struct {
	re   *regexp.Regexp
	repl string
}

// titleMN replaces whole words only, longest first so "Mousepad" wins over
// "Mouse".
var titleMN = compileWords([][2]string{
	{"Professional", "Мэргэжлийн"},
	{"Mechanical", "Механик"},
	{"Removable", "Салгах боломжтой"},
	{"Micropave", "Микропав"},
	{"Fjallraven", "Фьяллравен"},
	{"Bracelet", "Бугуйвч"},
	{"Backpack", "Үүргэвч"},
	{"Earrings", "Ээмэг"},
	{"Foldsack", "Нугалах"},
	{"Keyboard", "Гар"},
	{"Mousepad", "Хулганы дэвсгэр"},
	{"Necklace", "Зүүлт"},
	{"Wireless", "Утасгүй"},
	{"Headset", "Чихэвч"},
	{"Premium", "Дээд зэрэг"},
	{"Edition", "Хувилбар"},
	{"Leather", "Арьс"},
	{"Pierced", "Цоолсон"},
	{"Optical", "Оптик"},
	{"Station", "Станц"},
	{"Classic", "Сонгодог"},
	{"Gaming", "Тоглоомын"},
	{"Jacket", "Хүрэм"},
	{"Casual", "Энгийн"},
	{"Sleeve", "Ханцуй"},
	{"Hooded", "Юүдэнтэй"},
	{"Plated", "Бүрсэн"},
	{"Dragon", "Луу"},
	{"Petite", "Жижиг"},
	{"Silver", "Мөнгөн"},
	{"Cotton", "Хөвөн"},
	{"Mouse", "Хулгана"},
	{"Black", "Хар"},
	{"White", "Цагаан"},
	{"Green", "Ногоон"},
	{"Shirt", "Цамц"},
	{"Chain", "Гинж"},
	{"Short", "Богино"},
	{"Biker", "Дугуйчин"},
	{"Solid", "Хатуу"},
	{"Gold", "Алтан"},
	{"Blue", "Цэнхэр"},
	{"Ring", "Бөгж"},
	{"Slim", "Нарийн"},
	{"Lock", "Цоож"},
	{"Rain", "Бороо"},
	{"Moto", "Мото"},
	{"Faux", "Хиймэл"},
	{"Red", "Улаан"},
	{"Pro", "Мэргэжлийн"},
	{"Fit", "Тохирох"},
	{"Key", "Түлхүүр"},
	{"Set", "Багц"},
	{"and", "ба"},
})

func compileWords(pairs [][2]string) []wordRule {
	out := make([]wordRule, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, wordRule{re: regexp.MustCompile(`(?i)\b` + p[0] + `\b`), repl: p[1]})
	}
	return out
}

// CategoryName returns the display name of a catalog category.
func CategoryName(category, lang string) string {
	if Match(lang) == model.LangMongolian {
		if s, ok := categoryMN[category]; ok {
			return s
		}
	}
	return category
}

// TranslateProduct returns a copy of p with category and title words in lang.
// English and unknown languages return p unchanged. Ids, prices and tags are
// never touched.
func TranslateProduct(p model.Product, lang string) model.Product {
	if Match(lang) != model.LangMongolian {
		return p
	}
	p.Category = CategoryName(p.Category, lang)
	for _, w := range titleMN {
		p.Title = w.re.ReplaceAllLiteralString(p.Title, w.repl)
	}
	return p
}
