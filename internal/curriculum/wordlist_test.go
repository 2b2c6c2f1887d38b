package curriculum

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadWordList_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "My Travel Words.csv")
	content := "English,Korean,Sentence\n" +
		"ticket,표,I bought a ticket.\n" +
		",빈칸,skipped\n" +
		"airport,공항,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	words, err := LoadWordList(path)
	require.NoError(t, err)
	require.Len(t, words, 2)

	assert.Equal(t, "my-travel-words-ticket", words[0].ID)
	assert.Equal(t, "ticket", words[0].English)
	assert.Equal(t, "표", words[0].Korean)
	assert.Equal(t, "I bought a ticket.", words[0].Example)
	assert.Equal(t, "my-travel-words-airport", words[1].ID)
	assert.Empty(t, words[1].Example)
}

func TestLoadWordList_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Word", "뜻", "Example", "POS"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"library", "도서관", "I study in the library.", "noun"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"quiet", "조용한", "", "adjective"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	words, err := LoadWordList(path)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "library", words[0].English)
	assert.Equal(t, "도서관", words[0].Korean)
	assert.Equal(t, "noun", words[0].PartOfSpeech)
	assert.Equal(t, "adjective", words[1].PartOfSpeech)
}

func TestLoadWordList_MissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("Front,Back\nfoo,bar\n"), 0o644))

	_, err := LoadWordList(path)
	assert.True(t, errors.Is(err, ErrEmptyWordList), "err = %v", err)
}

func TestLoadWordList_UnsupportedExtension(t *testing.T) {
	_, err := LoadWordList("words.txt")
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "my-daily-life", slug("My Daily Life!"))
	assert.Equal(t, "중1-단어", slug("중1 단어"))
	assert.Equal(t, "a-b", slug("--a__b--"))
}

func TestLoadWordList_IDsFollowTheWord(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "unit.csv")
	require.NoError(t, os.WriteFile(first, []byte("English,Korean\nice cream,아이스크림\nbus,버스\n"), 0o644))
	before, err := LoadWordList(first)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(first, []byte("English,Korean\ntrain,기차\nbus,버스\nIce Cream,아이스크림\nbus,버스 (again)\n"), 0o644))
	after, err := LoadWordList(first)
	require.NoError(t, err)

	ids := map[string]string{}
	for _, w := range after {
		ids[w.ID] = w.English
	}
	assert.Len(t, after, 3, "the repeated bus row is dropped")
	for _, w := range before {
		assert.Contains(t, ids, w.ID, "%s kept its id", w.English)
	}
	assert.Equal(t, "unit-ice-cream", before[0].ID)
}

func TestWordID_NoLetters(t *testing.T) {
	id := wordID("list", "?!")
	assert.Regexp(t, `^list-[0-9a-f]{8}$`, id)
	assert.Equal(t, id, wordID("list", "?!"))
}
