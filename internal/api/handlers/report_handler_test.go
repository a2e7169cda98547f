package handlers_test

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestGetLeveragesSumsPerEntityAndTotal(t *testing.T) {
	router := newRouter(&fakeStore{
		collections: map[string][]bson.M{
			"leverages": {
				{"Entity": "Bank A", "Amount": float64(100)},
				{"Entity": "Bank A", "Amount": "250"},
				{"Entity": "Coop B", "Amount": int32(50)},
				{"Entity": "Coop B", "Amount": "not a number"},
			},
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/leverages", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["Bank A"] != float64(350) {
		t.Errorf("Bank A = %v, want 350", data["Bank A"])
	}
	if data["Coop B"] != float64(50) {
		t.Errorf("Coop B = %v, want 50", data["Coop B"])
	}
	if body["total"] != float64(400) {
		t.Errorf("total = %v, want 400", body["total"])
	}
}

func TestGetMarketSurveysCountsEachSector(t *testing.T) {
	router := newRouter(&fakeStore{
		collections: map[string][]bson.M{
			"maizesurveys":   {{"q": 1}, {"q": 2}, {"q": 3}},
			"poultrysurveys": {{"q": 1}},
			// remaining sectors empty
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/market-surveys", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	want := map[string]float64{
		"maize":        3,
		"poultry":      1,
		"dairy":        0,
		"horticulture": 0,
		"soybean":      0,
		"aquaculture":  0,
	}
	for field, count := range want {
		if body[field] != count {
			t.Errorf("%s = %v, want %v", field, body[field], count)
		}
	}
}

func TestGetMarketSurveysFailsWhole(t *testing.T) {
	router := newRouter(&fakeStore{
		collections: map[string][]bson.M{
			"maizesurveys": {{"q": 1}},
		},
		failing: map[string]error{"dairysurveys": errors.New("cursor timeout")},
	})

	w := doRequest(t, router, http.MethodGet, "/api/market-surveys", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := decodeBody(t, w)
	if _, ok := body["maize"]; ok {
		t.Fatalf("partial results leaked: %v", body)
	}
	if body["message"] != "Server error" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetProductivityTransposesRows(t *testing.T) {
	router := newRouter(&fakeStore{
		collections: map[string][]bson.M{
			"productivity": {
				{"Sector": "Maize", "BaseLine": float64(10), "Early Productivity Assessment": float64(12), "% Growth": float64(20)},
				{"Sector": "Poultry", "BaseLine": float64(5), "Early Productivity Assessment": float64(5), "% Growth": float64(0)},
			},
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/productivity", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if !reflect.DeepEqual(body["sectors"], []interface{}{"Maize", "Poultry"}) {
		t.Errorf("sectors = %v", body["sectors"])
	}
	if !reflect.DeepEqual(body["baseline"], []interface{}{float64(10), float64(5)}) {
		t.Errorf("baseline = %v", body["baseline"])
	}
	if !reflect.DeepEqual(body["earlyassessment"], []interface{}{float64(12), float64(5)}) {
		t.Errorf("earlyassessment = %v", body["earlyassessment"])
	}
	if !reflect.DeepEqual(body["growth"], []interface{}{float64(20), float64(0)}) {
		t.Errorf("growth = %v", body["growth"])
	}
}

func TestGetDataStructureReturnsSortedKeys(t *testing.T) {
	router := newRouter(&fakeStore{
		collections: map[string][]bson.M{
			"participants": {{"Name": "x", "ID": int32(1), "Gender": "F"}},
			"a2f":          {{"Age": int32(30), "Loan Period": int32(12)}},
			// a2m left empty
		},
	})

	w := doRequest(t, router, http.MethodGet, "/api/data-structure", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if _, ok := body["success"]; ok {
		t.Fatalf("schema discovery response must omit the success key: %v", body)
	}
	if !reflect.DeepEqual(body["participants"], []interface{}{"Gender", "ID", "Name"}) {
		t.Errorf("participants keys = %v", body["participants"])
	}
	if !reflect.DeepEqual(body["a2f"], []interface{}{"Age", "Loan Period"}) {
		t.Errorf("a2f keys = %v", body["a2f"])
	}
	if !reflect.DeepEqual(body["a2m"], []interface{}{}) {
		t.Errorf("a2m keys = %v", body["a2m"])
	}
}
