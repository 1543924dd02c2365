// htmltext приводит HTML-содержимое материала к читаемому тексту
// для поисковых сниппетов.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Readable извлекает текст из HTML: размечающие и служебные узлы
// (script/style/noscript) отбрасываются, пробельные последовательности
// схлопываются. Невалидный HTML возвращается как есть (обрезанный по краям):
// деградация до исходника безопаснее пустого результата.
func Readable(html string) string {
	trimmed := strings.TrimSpace(html)
	if trimmed == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return trimmed
	}

	doc.Find("script, style, noscript").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}
