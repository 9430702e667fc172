package bible

import (
	"context"
	"fmt"

	"github.com/truthseed/truthseed/internal/model"
)

// mockVerses holds canned RVR60 text keyed by book:chapter:verseRange.
// Translation is deliberately ignored: the mock serves offline/demo
// operation and the call-time fallback.
var mockVerses = map[string]string{
	"Juan:1:12":          "Mas a todos los que le recibieron, a los que creen en su nombre, les dio potestad de ser hechos hijos de Dios.",
	"Romanos:8:1-2":      "Ahora, pues, ninguna condenación hay para los que están en Cristo Jesús, los que no andan conforme a la carne, sino conforme al Espíritu. Porque la ley del Espíritu de vida en Cristo Jesús me ha librado de la ley del pecado y de la muerte.",
	"Efesios:2:10":       "Porque somos hechura suya, creados en Cristo Jesús para buenas obras, las cuales Dios preparó de antemano para que anduviésemos en ellas.",
	"Romanos:8:38-39":    "Por lo cual estoy seguro de que ni la muerte, ni la vida, ni ángeles, ni principados, ni potestades, ni lo presente, ni lo por venir, ni lo alto, ni lo profundo, ni ninguna otra cosa creada nos podrá separar del amor de Dios, que es en Cristo Jesús Señor nuestro.",
	"2 Corintios:5:17":   "De modo que si alguno está en Cristo, nueva criatura es; las cosas viejas pasaron; he aquí todas son hechas nuevas.",
	"Gálatas:5:1":        "Estad, pues, firmes en la libertad con que Cristo nos hizo libres, y no estéis otra vez sujetos al yugo de esclavitud.",
	"Efesios:1:4":        "Según nos escogió en él antes de la fundación del mundo, para que fuésemos santos y sin mancha delante de él.",
	"Efesios:1:13-14":    "En él también vosotros, habiendo oído la palabra de verdad, el evangelio de vuestra salvación, y habiendo creído en él, fuisteis sellados con el Espíritu Santo de la promesa, que es las arras de nuestra herencia hasta la redención de la posesión adquirida, para alabanza de su gloria.",
	"1 Corintios:6:19-20": "¿O ignoráis que vuestro cuerpo es templo del Espíritu Santo, el cual está en vosotros, el cual tenéis de Dios, y que no sois vuestros? Porque habéis sido comprados por precio; glorificad, pues, a Dios en vuestro cuerpo y en vuestro espíritu, los cuales son de Dios.",
	"Jeremías:31:3":      "Jehová se manifestó a mí hace ya mucho tiempo, diciendo: Con amor eterno te he amado; por tanto, te prolongué mi misericordia.",
}

// MockProvider returns canned verse text without external API calls.
// Used for offline/demo operation and as a last-resort fallback.
type MockProvider struct{}

// NewMockProvider creates a mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// IsConfigured always reports true: the mock needs no configuration
func (p *MockProvider) IsConfigured() bool {
	return true
}

// FetchVerse looks up canned text for the reference
func (p *MockProvider) FetchVerse(_ context.Context, ref model.Reference) (*model.Verse, error) {
	key := fmt.Sprintf("%s:%d:%s", ref.Book, ref.Chapter, ref.VerseRange())

	text, ok := mockVerses[key]
	if !ok {
		return nil, model.NewVerseError(ref, "mock verse not found")
	}

	return &model.Verse{
		Text:        text,
		Reference:   ref,
		Translation: ref.Translation,
	}, nil
}
