package ml

import "testing"

func TestMockBatch(t *testing.T) {
	batch := MockBatch()

	if len(batch.Results) != 3 {
		t.Fatalf("expected 3 records, got %d", len(batch.Results))
	}

	want := []struct {
		class      Class
		confidence float64
		benign     float64
		malignant  float64
		risk       string
	}{
		{Benign, 85, 85, 15, RiskLow},
		{Benign, 88, 88, 12, RiskLow},
		{Malignant, 91, 9, 91, RiskModerateHigh},
	}

	for i, r := range batch.Results {
		w := want[i]
		if r.RecordID != i+1 {
			t.Errorf("record %d: id = %d", i, r.RecordID)
		}
		if r.Prediction != w.class || r.Diagnosis != w.class.String() {
			t.Errorf("record %d: class = %v (%s), want %v", i, r.Prediction, r.Diagnosis, w.class)
		}
		if r.Confidence != w.confidence {
			t.Errorf("record %d: confidence = %v, want %v", i, r.Confidence, w.confidence)
		}
		if r.ProbabilityBenign != w.benign || r.ProbabilityMalignant != w.malignant {
			t.Errorf("record %d: probabilities = %v/%v, want %v/%v", i, r.ProbabilityBenign, r.ProbabilityMalignant, w.benign, w.malignant)
		}
		if r.RiskLevel != w.risk {
			t.Errorf("record %d: risk = %q, want %q", i, r.RiskLevel, w.risk)
		}
	}

	s := batch.Summary
	if s.TotalRecords != 3 || s.BenignCount != 2 || s.MalignantCount != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.AvgConfidence != 88.0 {
		t.Errorf("avg confidence = %v, want 88", s.AvgConfidence)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalRecords != 0 || s.AvgConfidence != 0 {
		t.Errorf("unexpected summary for no records: %+v", s)
	}
}

func TestModelMetadata(t *testing.T) {
	m := ModelMetadata()
	if m.ModelType != "RandomForestClassifier" {
		t.Errorf("model type = %q", m.ModelType)
	}
	if m.NFeatures != 30 {
		t.Errorf("feature count = %d", m.NFeatures)
	}
	if m.TargetEncoding["Benign"] != 0 || m.TargetEncoding["Malignant"] != 1 {
		t.Errorf("target encoding = %v", m.TargetEncoding)
	}

	perf := m.Performance()
	if perf.CVROCAUC != 0.991 || perf.TestRecall != 0.9286 || perf.TestF1 != 0.963 || perf.TestPrecision != 1 {
		t.Errorf("unexpected performance block: %+v", perf)
	}

	m.TargetEncoding["Benign"] = 7
	m.BestParams["n_estimators"] = 100
	fresh := ModelMetadata()
	if fresh.TargetEncoding["Benign"] != 0 || len(fresh.BestParams) != 0 {
		t.Error("ModelMetadata must not expose the shared record")
	}
}
