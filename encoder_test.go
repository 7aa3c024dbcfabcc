package huffcode

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func makeTestEncoder() Encoder[int] {
	var ft FrequencyTable[int]
	for symbol, freq := range []uint64{5, 9, 12, 13, 16, 45} {
		ft.Add(symbol, freq)
	}
	root, err := BuildTree(ft)
	if err != nil {
		panic(err)
	}
	var e Encoder[int]
	e.Init(root)
	return e
}

func TestEncoder(t *testing.T) {
	e := makeTestEncoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(5) = \"0\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if e.Len() != 6 {
		t.Errorf("expected 6 codes, got %d", e.Len())
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder()

	actual, err := e.Encode([]int{5, 0, 4, 5})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	expect := "0" + "1100" + "111" + "0"
	if expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	e := makeTestEncoder()

	out, err := e.Encode([]int{5, 6, 5})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}

	_, err = e.EncodeSymbol(-1)
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestEncoder_EncodedLen(t *testing.T) {
	e := makeTestEncoder()

	var ft FrequencyTable[int]
	for symbol, freq := range []uint64{5, 9, 12, 13, 16, 45} {
		ft.Add(symbol, freq)
	}

	actual, err := e.EncodedLen(ft)
	if err != nil {
		t.Fatalf("EncodedLen failed: %v", err)
	}
	const expect = 45*1 + 12*3 + 13*3 + 16*3 + 5*4 + 9*4
	if actual != expect {
		t.Errorf("expected %d bits, got %d", expect, actual)
	}

	ft.Add(99, 1)
	if _, err := e.EncodedLen(ft); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestEncoder_SingleLeaf(t *testing.T) {
	var e Encoder[rune]
	e.Init(NewLeaf('a', 4))

	hc, err := e.EncodeSymbol('a')
	if err != nil {
		t.Fatalf("EncodeSymbol failed: %v", err)
	}
	if hc != "0" {
		t.Errorf("expected code \"0\", got %s", hc)
	}
	if e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", e.MinSize(), e.MaxSize())
	}
}

func TestEncoder_PrefixFree(t *testing.T) {
	for _, text := range testTexts() {
		t.Run(text, func(t *testing.T) {
			root, err := BuildTreeFrom([]rune(text))
			if err != nil {
				t.Fatalf("BuildTreeFrom failed: %v", err)
			}
			var e Encoder[rune]
			e.Init(root)

			codes := e.Codes()
			for a, ac := range codes {
				if ac.Len() == 0 {
					t.Errorf("symbol %q has an empty code", a)
				}
				for b, bc := range codes {
					if a != b && ac.IsPrefixOf(bc) {
						t.Errorf("code %s for %q is a prefix of code %s for %q", ac, a, bc, b)
					}
				}
			}
		})
	}
}

func TestEncoder_FrequentSymbolsAreShorter(t *testing.T) {
	for _, text := range testTexts() {
		t.Run(text, func(t *testing.T) {
			ft := CountFrequencies([]rune(text))
			root, err := BuildTree(ft)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}
			var e Encoder[rune]
			e.Init(root)

			codes := e.Codes()
			for _, a := range ft.Symbols() {
				for _, b := range ft.Symbols() {
					if ft.Count(a) > ft.Count(b) && codes[a].Len() > codes[b].Len() {
						t.Errorf("%q (count %d) has code %s, longer than %s for %q (count %d)",
							a, ft.Count(a), codes[a], codes[b], b, ft.Count(b))
					}
				}
			}
		})
	}
}

func testTexts() []string {
	return []string{
		"a",
		"ab",
		"abracadabra",
		"mississippi river",
		"the quick brown fox jumps over the lazy dog",
		"aaaaaaaabbbbccd",
		"héllo wörld ☃☃☃",
	}
}
