package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestCSVRepositoryLookup(t *testing.T) {
	path := writeTempCSV(t, "expediente,score_final,ventas\n12345,0.42,1000\n67890,0.9,\n")
	repo := &CSVRepository{Path: path}

	rec, ok, err := repo.LookupByCaseID(context.Background(), 12345)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok {
		t.Fatal("expected record for 12345")
	}
	if v, ok := rec.Value("score_final"); !ok || v != 0.42 {
		t.Fatalf("score_final = %v, %v; want 0.42, true", v, ok)
	}
	if v, ok := rec.Value("ventas"); !ok || v != 1000 {
		t.Fatalf("ventas = %v, %v; want 1000, true", v, ok)
	}
}

func TestCSVRepositoryEmptyCellIsMissing(t *testing.T) {
	path := writeTempCSV(t, "expediente,score_final,ventas\n67890,0.9,\n")
	repo := &CSVRepository{Path: path}

	rec, ok, err := repo.LookupByCaseID(context.Background(), 67890)
	if err != nil || !ok {
		t.Fatalf("lookup: ok=%v err=%v", ok, err)
	}
	if _, ok := rec.Value("ventas"); ok {
		t.Fatal("empty cell should not produce a value")
	}
}

func TestCSVRepositoryFloatCaseID(t *testing.T) {
	path := writeTempCSV(t, "expediente,score_final\n12345.0,0.5\n")
	repo := &CSVRepository{Path: path}

	_, ok, err := repo.LookupByCaseID(context.Background(), 12345)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok {
		t.Fatal("float-formatted identifier should match")
	}
}

func TestCSVRepositoryUnknownCaseID(t *testing.T) {
	path := writeTempCSV(t, "expediente,score_final\n12345,0.5\n")
	repo := &CSVRepository{Path: path}

	_, ok, err := repo.LookupByCaseID(context.Background(), 99999)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Fatal("unknown identifier should not match")
	}
}

func TestCSVRepositoryMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "id,score_final\n12345,0.5\n")
	repo := &CSVRepository{Path: path}

	if _, _, err := repo.LookupByCaseID(context.Background(), 12345); err == nil {
		t.Fatal("expected error for dataset without identifier column")
	}
}

func TestCSVRepositoryMissingFile(t *testing.T) {
	repo := &CSVRepository{Path: filepath.Join(t.TempDir(), "nope.csv")}
	if _, _, err := repo.LookupByCaseID(context.Background(), 1); err == nil {
		t.Fatal("expected error for missing dataset file")
	}
}

func TestCSVRankingIndexContains(t *testing.T) {
	path := writeTempCSV(t, "expediente\n111\n222\n")
	idx := &CSVRankingIndex{Path: path}

	ok, err := idx.Contains(context.Background(), 222)
	if err != nil || !ok {
		t.Fatalf("contains(222) = %v, %v; want true, nil", ok, err)
	}
	ok, err = idx.Contains(context.Background(), 333)
	if err != nil || ok {
		t.Fatalf("contains(333) = %v, %v; want false, nil", ok, err)
	}
}

func TestCSVRankingIndexMissingFileIsEmpty(t *testing.T) {
	idx := &CSVRankingIndex{Path: filepath.Join(t.TempDir(), "nope.csv")}
	ok, err := idx.Contains(context.Background(), 1)
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if ok {
		t.Fatal("missing index file should behave as an empty set")
	}
}

func TestOpenRepositoryByExtension(t *testing.T) {
	if _, ok := OpenRepository("data/df_score.csv").(*CSVRepository); !ok {
		t.Fatal("csv path should open a CSV repository")
	}
	if _, ok := OpenRepository("data/df_score.xlsx").(*XLSXRepository); !ok {
		t.Fatal("xlsx path should open an XLSX repository")
	}
	if _, ok := OpenRankingIndex("data/bi_ranking.xlsx").(*XLSXRankingIndex); !ok {
		t.Fatal("xlsx path should open an XLSX index")
	}
}
