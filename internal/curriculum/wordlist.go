package curriculum

import (
	"encoding/csv"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CustomGradeID is the synthetic grade imported word lists live under.
const CustomGradeID = "custom"

func customGrade() Grade {
	return Grade{
		ID:        CustomGradeID,
		Name:      "나만의 단어장",
		ShortName: "단어장",
		Level:     LevelCustom,
		Order:     99,
	}
}

// ErrEmptyWordList is returned when an import yields no usable rows.
var ErrEmptyWordList = errors.New("word list has no usable rows")

// header aliases, lower-cased.
var columnAliases = map[string][]string{
	"english":      {"english", "word", "영어", "단어"},
	"korean":       {"korean", "meaning", "translation", "한국어", "뜻"},
	"example":      {"sentence", "example", "예문"},
	"exampleKo":    {"sentence translation", "example translation", "예문 해석"},
	"partOfSpeech": {"partofspeech", "part of speech", "pos", "품사"},
}

// LoadWordList reads a word list from an .xlsx or .csv file. The first row
// is a header; columns are matched by name. Rows missing the English word or
// its Korean meaning are skipped.
func LoadWordList(path string) ([]Word, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readExcel(path)
	default:
		return nil, fmt.Errorf("unsupported word list format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := parseRows(slug(stem), rows)
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyWordList)
	}
	return words, nil
}

// CustomUnit wraps imported words into a unit of the custom grade.
func CustomUnit(name string, number int, words []Word) Unit {
	return Unit{
		ID:      fmt.Sprintf("%s-%s", CustomGradeID, slug(name)),
		GradeID: CustomGradeID,
		Number:  number,
		Title:   fmt.Sprintf("Word List %d. %s", number, name),
		Topic:   name,
		Words:   words,
	}
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyWordList)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func parseRows(prefix string, rows [][]string) []Word {
	if len(rows) < 2 {
		return nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for key, aliases := range columnAliases {
			for _, a := range aliases {
				if h == a {
					if _, taken := cols[key]; !taken {
						cols[key] = i
					}
				}
			}
		}
	}
	if _, ok := cols["english"]; !ok {
		return nil
	}
	if _, ok := cols["korean"]; !ok {
		return nil
	}

	cell := func(row []string, key string) string {
		i, ok := cols[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	// IDs come from the English word so stored progress survives row
	// reordering. A repeated word keeps its first row.
	var words []Word
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		en, ko := cell(row, "english"), cell(row, "korean")
		if en == "" || ko == "" {
			continue
		}
		id := wordID(prefix, en)
		if seen[id] {
			continue
		}
		seen[id] = true
		words = append(words, Word{
			ID:            id,
			English:       en,
			Korean:        ko,
			Example:       cell(row, "example"),
			ExampleKorean: cell(row, "exampleKo"),
			PartOfSpeech:  cell(row, "partOfSpeech"),
			Difficulty:    "basic",
		})
	}
	return words
}

// wordID is <prefix>-<slug of en>, or a hash when en has no letters.
func wordID(prefix, en string) string {
	if s := slug(en); s != "" {
		return prefix + "-" + s
	}
	h := fnv.New32a()
	h.Write([]byte(en))
	return fmt.Sprintf("%s-%08x", prefix, h.Sum32())
}

// slug lower-cases s and replaces runs of non-alphanumerics with '-'.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		isWord := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 0x7f
		if isWord {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
