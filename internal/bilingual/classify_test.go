package bilingual

import (
	"strings"
	"testing"

	"github.com/yuanwutong/portfolio/internal/i18n"
)

func TestClassifyMixedMovesChineseFirst(t *testing.T) {
	in := "<h2>About</h2>\n<p>I build robots.</p>\n<h2>关于</h2>\n<p>我做机器人。</p>\n<p>Second English.</p>\n"
	block, err := Classify(in)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	want := []string{
		`<h2 data-lang="zh">关于</h2>`,
		`<p data-lang="zh">我做机器人。</p>`,
		`<h2 data-lang="en">About</h2>`,
		`<p data-lang="en">I build robots.</p>`,
		`<p data-lang="en">Second English.</p>`,
	}
	if got := strings.Split(block.HTML, "\n"); !equal(got, want) {
		t.Fatalf("HTML =\n%s\nwant\n%s", block.HTML, strings.Join(want, "\n"))
	}

	wantLangs := []i18n.Lang{i18n.LangZH, i18n.LangZH, i18n.LangEN, i18n.LangEN, i18n.LangEN}
	for i, l := range wantLangs {
		if block.Langs[i] != l {
			t.Errorf("Langs[%d] = %q, want %q", i, block.Langs[i], l)
		}
	}
	if !block.Mixed() {
		t.Error("expected mixed block")
	}
}

func TestClassifySingleLanguageKeepsOrder(t *testing.T) {
	in := "<p>three</p><p>one</p><ul><li>two</li></ul>"
	block, err := Classify(in)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	want := `<p data-lang="en">three</p>` + "\n" + `<p data-lang="en">one</p>` + "\n" + `<ul data-lang="en"><li>two</li></ul>`
	if block.HTML != want {
		t.Fatalf("HTML = %q, want %q", block.HTML, want)
	}
	if block.Has(i18n.LangZH) || block.Mixed() {
		t.Error("did not expect zh fragments")
	}

	zhOnly, err := Classify("<p>第二</p><p>第一</p>")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if zhOnly.HTML != `<p data-lang="zh">第二</p>`+"\n"+`<p data-lang="zh">第一</p>` {
		t.Fatalf("zh-only HTML = %q", zhOnly.HTML)
	}
}

func TestClassifyNestedTextAndExistingAttr(t *testing.T) {
	in := `<blockquote data-lang="en"><p>quote <em>引用</em></p></blockquote><p class="x">plain</p>`
	block, err := Classify(in)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !strings.HasPrefix(block.HTML, `<blockquote data-lang="zh">`) {
		t.Errorf("nested CJK text should tag the top-level element zh, got %q", block.HTML)
	}
	if !strings.Contains(block.HTML, `<p class="x" data-lang="en">plain</p>`) {
		t.Errorf("existing attributes should be kept, got %q", block.HTML)
	}
}

func TestClassifyWrapsLooseText(t *testing.T) {
	block, err := Classify("loose text\n\n<p>中文</p>")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	want := `<p data-lang="zh">中文</p>` + "\n" + `<p data-lang="en">loose text` + "\n\n" + `</p>`
	if block.HTML != want {
		t.Fatalf("HTML = %q, want %q", block.HTML, want)
	}
}

func TestClassifyDropsTopLevelComments(t *testing.T) {
	block, err := Classify("<!-- draft note -->\n<p>Hello</p>\n<!-- 草稿 -->")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if block.HTML != `<p data-lang="en">Hello</p>` {
		t.Errorf("HTML = %q", block.HTML)
	}
	if len(block.Langs) != 1 {
		t.Errorf("expected 1 fragment, got %d", len(block.Langs))
	}
}

func TestClassifyEmpty(t *testing.T) {
	block, err := Classify("  \n ")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if block.HTML != "" || len(block.Langs) != 0 {
		t.Errorf("expected empty block, got %+v", block)
	}
}

func TestContainsCJK(t *testing.T) {
	if !ContainsCJK("hello 世界") {
		t.Error("expected CJK")
	}
	if ContainsCJK("hello, world ñ é") {
		t.Error("did not expect CJK")
	}
	// Kana and Hangul are outside the unified ideographs block.
	if ContainsCJK("ひらがな 한국어") {
		t.Error("kana and hangul should not count")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
