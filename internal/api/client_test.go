package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/modepsa/hornotui/internal/model"
)

func TestFetchReportDecodesPage(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reportes/hornos" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"numero_ot": "0000100603", "horno": "H-01", "temp_zona_1": 0.0},
				{"numero_ot": "0000100604", "horno": "H-02"},
				{"numero_ot": "0000100605", "horno": "H-01"},
			},
			"total": 42,
			"page":  2,
			"pages": 5,
		})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	ot := "0000100603"
	out, err := client.FetchReport(context.Background(), model.ReportPayload{NumeroOT: &ot, Page: 2, Size: 10})
	if err != nil {
		t.Fatalf("fetch report: %v", err)
	}
	if len(out.Data) != 3 || out.Total != 42 || out.Page != 2 || out.Pages != 5 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.Data[0].TempZona1 == nil || *out.Data[0].TempZona1 != 0 {
		t.Fatalf("zero temperature must survive decoding, got %v", out.Data[0].TempZona1)
	}
	if out.Data[1].TempZona1 != nil {
		t.Fatalf("absent temperature must decode to nil")
	}
	if gotBody["numero_ot"] != "0000100603" || gotBody["page"] != float64(2) || gotBody["size"] != float64(10) {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
	if v, present := gotBody["fecha_desde"]; !present || v != nil {
		t.Fatalf("unset dates must be serialized as null, got %v", gotBody)
	}
}

func TestFetchReportServerErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "tabla no disponible"})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.FetchReport(context.Background(), model.ReportPayload{}); err == nil {
		t.Fatalf("expected error on 500")
	} else if err.Error() != "server error: tabla no disponible" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchReportRejectedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "filtros inválidos"})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.FetchReport(context.Background(), model.ReportPayload{}); err == nil {
		t.Fatalf("expected error on success=false")
	}
}

func TestFetchReportMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.FetchReport(context.Background(), model.ReportPayload{}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestExportExcelReturnsBytes(t *testing.T) {
	blob := []byte{0x50, 0x4b, 0x03, 0x04, 0x01, 0x02}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reportes/hornos/excel" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, present := body["page"]; present {
			t.Fatalf("export body must omit paging, got %v", body)
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write(blob)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	data, err := client.ExportExcel(context.Background(), model.ReportPayload{})
	if err != nil {
		t.Fatalf("export excel: %v", err)
	}
	if !bytes.Equal(data, blob) {
		t.Fatalf("spreadsheet bytes mangled")
	}
}

func TestExportExcelError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "sin conexión al generador"})
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	if _, err := client.ExportExcel(context.Background(), model.ReportPayload{}); err == nil {
		t.Fatalf("expected error on 502")
	}
}
