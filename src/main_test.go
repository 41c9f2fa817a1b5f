package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"rrs/src/boot"
	"rrs/src/common"
	"rrs/src/db"
	"rrs/src/lib"
	"rrs/src/models"
	"rrs/src/types"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB *gorm.DB
}

var dbi *gorm.DB

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

func NewTestDB() *gorm.DB {
	d, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	return d
}

func (s *TestSuite) SetupSuite() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("reservabledate", reservationTimeValidatorFunc)
	}

	d := NewTestDB()
	db.NewDB(d)
	s.DB = d
	dbi = d

	err := dbi.AutoMigrate(
		&models.Customer{},
		&models.Restaurant{},
		&models.Table{},
		&models.Reservation{},
		&models.Request{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	if err := boot.SeedDemoData(); err != nil {
		log.Fatalf("error seeding: %s", err.Error())
	}
}

func (s *TestSuite) TearDownSuite() {
	inner, err := s.DB.DB()
	if err != nil {
		log.Printf("Error accessing inner db instance: %s\n", err.Error())
		return
	}
	inner.Exec(`
	DELETE FROM requests WHERE true;
	DELETE FROM reservations WHERE true;
	DELETE FROM tables WHERE true;
	DELETE FROM restaurants WHERE true;
	DELETE FROM customers WHERE true;
	`)
	inner.Close()
}

func (s *TestSuite) SetupTest() {
	dbi.Exec("DELETE FROM requests WHERE true")
	dbi.Exec("DELETE FROM reservations WHERE true")
}

func newTestRouter() *gin.Engine {
	router := setupRouter()
	registerRoutes(router)
	return router
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestHealthz() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	registerRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/restaurants", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestMaintenanceModeUnset() {
	os.Unsetenv("MAINTENANCE_MODE")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	registerRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/restaurants", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestAvailabilityByCapacity() {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reservations/availability?restaurant_id=rest_001&party_size=5&reservation_time=2026-09-10T19:00:00Z", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, err := io.ReadAll(w.Body)
	assert.Nil(s.T(), err)
	body := string(rbytes)
	assert.True(s.T(), gjson.Get(body, "available").Bool())
	assert.EqualValues(s.T(), 4, gjson.Get(body, "count").Int())
	for _, t := range gjson.Get(body, "data").Array() {
		assert.GreaterOrEqual(s.T(), t.Get("seating_capacity").Int(), int64(5))
	}
}

func (s *TestSuite) TestAvailabilityMissingParams() {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reservations/availability?restaurant_id=rest_001", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)
}

func createReservationRequest(body map[string]any) *http.Request {
	sbody, _ := json.Marshal(&body)
	req, _ := http.NewRequest("POST", "/api/v1/reservations", strings.NewReader(string(sbody)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (s *TestSuite) TestCreateReservation() {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"table_id":         "table_003",
		"reservation_time": "2026-09-10T19:00:00Z",
		"party_size":       4,
	}))

	assert.Equal(s.T(), 201, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	body := string(rbytes)
	assert.True(s.T(), gjson.Get(body, "success").Bool())
	resId := gjson.Get(body, "data.reservation_id").String()
	assert.NotEmpty(s.T(), resId)
	assert.Equal(s.T(), "confirmed", gjson.Get(body, "data.status").String())

	// round trip
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/api/v1/reservations/%s", resId), nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ = io.ReadAll(w.Body)
	body = string(rbytes)
	assert.Equal(s.T(), "table_003", gjson.Get(body, "data.table_id").String())
	assert.EqualValues(s.T(), 4, gjson.Get(body, "data.party_size").Int())
}

func (s *TestSuite) TestDoubleBookingConflict() {
	router := newTestRouter()

	payload := map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"table_id":         "table_004",
		"reservation_time": "2026-09-10T20:00:00Z",
		"party_size":       4,
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(payload))
	assert.Equal(s.T(), 201, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(payload))
	assert.Equal(s.T(), 409, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	assert.Equal(s.T(), "Table is not available at this time", gjson.Get(string(rbytes), "error").String())

	var count int64
	dbi.Model(&models.Reservation{}).
		Where(&models.Reservation{TableID: "table_004", Status: types.RESERVATION_CONFIRMED}).
		Count(&count)
	assert.EqualValues(s.T(), 1, count)
}

func (s *TestSuite) TestBookedTableExcludedFromAvailability() {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"table_id":         "table_005",
		"reservation_time": "2026-09-11T18:00:00Z",
		"party_size":       6,
	}))
	assert.Equal(s.T(), 201, w.Code)

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reservations/availability?restaurant_id=rest_001&party_size=6&reservation_time=2026-09-11T18:00:00Z", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	body := string(rbytes)
	for _, t := range gjson.Get(body, "data").Array() {
		assert.NotEqual(s.T(), "table_005", t.Get("table_id").String())
	}

	// a different time at the same table is still open
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/reservations/availability?restaurant_id=rest_001&party_size=6&reservation_time=2026-09-11T20:00:00Z", nil)
	router.ServeHTTP(w, req)
	rbytes, _ = io.ReadAll(w.Body)
	found := false
	for _, t := range gjson.Get(string(rbytes), "data").Array() {
		if t.Get("table_id").String() == "table_005" {
			found = true
		}
	}
	assert.True(s.T(), found)
}

func (s *TestSuite) TestCancelThenRebook() {
	router := newTestRouter()

	payload := map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"table_id":         "table_007",
		"reservation_time": "2026-09-12T19:00:00Z",
		"party_size":       2,
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(payload))
	assert.Equal(s.T(), 201, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	resId := gjson.Get(string(rbytes), "data.reservation_id").String()

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/v1/reservations/%s", resId), nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ = io.ReadAll(w.Body)
	assert.Equal(s.T(), "cancelled", gjson.Get(string(rbytes), "data.status").String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(payload))
	assert.Equal(s.T(), 201, w.Code)
}

func (s *TestSuite) TestSpecialRequestsFanout() {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"table_id":         "table_010",
		"reservation_time": "2026-09-13T19:00:00Z",
		"party_size":       8,
		"special_requests": []string{"window seat", "birthday cake", "wheelchair access"},
	}))
	assert.Equal(s.T(), 201, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	resId := gjson.Get(string(rbytes), "data.reservation_id").String()

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/api/v1/reservations/%s/requests", resId), nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ = io.ReadAll(w.Body)
	body := string(rbytes)
	assert.EqualValues(s.T(), 3, gjson.Get(body, "count").Int())
	for _, r := range gjson.Get(body, "data").Array() {
		assert.Equal(s.T(), "normal", r.Get("priority").String())
		assert.Equal(s.T(), resId, r.Get("reservation_id").String())
	}
}

func (s *TestSuite) TestCreateReservationValidation() {
	router := newTestRouter()

	// missing table_id
	w := httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"reservation_time": "2026-09-10T19:00:00Z",
		"party_size":       2,
	}))
	assert.Equal(s.T(), 400, w.Code)

	// malformed time
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"table_id":         "table_001",
		"reservation_time": "next friday at 7",
		"party_size":       2,
	}))
	assert.Equal(s.T(), 400, w.Code)

	// zero party size
	w = httptest.NewRecorder()
	router.ServeHTTP(w, createReservationRequest(map[string]any{
		"customer_id":      "cust_001",
		"restaurant_id":    "rest_001",
		"table_id":         "table_001",
		"reservation_time": "2026-09-10T19:00:00Z",
		"party_size":       0,
	}))
	assert.Equal(s.T(), 400, w.Code)
}

func (s *TestSuite) TestCustomerLifecycle() {
	router := newTestRouter()

	jbody := map[string]any{
		"name":         "Jamie Doe",
		"email":        "jamie@example.com",
		"phone_number": "(555) 111-2222",
		"preferences":  map[string]any{"seating": "window"},
	}
	sbody, _ := json.Marshal(&jbody)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/customers", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 201, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	body := string(rbytes)
	custId := gjson.Get(body, "data.customer_id").String()
	assert.NotEmpty(s.T(), custId)
	assert.Equal(s.T(), "bronze", gjson.Get(body, "data.loyalty_status").String())

	jbody = map[string]any{"loyalty_status": "gold"}
	sbody, _ = json.Marshal(&jbody)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", fmt.Sprintf("/api/v1/customers/%s", custId), strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ = io.ReadAll(w.Body)
	assert.Equal(s.T(), "gold", gjson.Get(string(rbytes), "data.loyalty_status").String())
	assert.Equal(s.T(), "Jamie Doe", gjson.Get(string(rbytes), "data.name").String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/customers/nope", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 404, w.Code)
}

func (s *TestSuite) TestCustomerValidation() {
	router := newTestRouter()

	jbody := map[string]any{
		"name":         "No Email",
		"email":        "not-an-email",
		"phone_number": "(555) 111-2222",
	}
	sbody, _ := json.Marshal(&jbody)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/customers", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 400, w.Code)
}

func (s *TestSuite) TestRestaurantRoutes() {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/restaurants/rest_001", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	body := string(rbytes)
	assert.Equal(s.T(), "Fine Dining Restaurant", gjson.Get(body, "data.name").String())
	assert.Equal(s.T(), "Contemporary American", gjson.Get(body, "data.cuisine_type").String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/restaurants/rest_001/tables", nil)
	router.ServeHTTP(w, req)
	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ = io.ReadAll(w.Body)
	assert.EqualValues(s.T(), 11, gjson.Get(string(rbytes), "count").Int())
}

func (s *TestSuite) TestAgentFallback() {
	lib.NewLLMClient(&fakeLLM{reply: "I'd be happy to help you find a table!"})

	router := newTestRouter()

	jbody := map[string]any{"prompt": "got anything for tonight?"}
	sbody, _ := json.Marshal(&jbody)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/agent", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	body := string(rbytes)
	assert.True(s.T(), gjson.Get(body, "success").Bool())
	assert.Equal(s.T(), "check_availability", gjson.Get(body, "aiResponse.action").String())
	assert.Equal(s.T(), 0.7, gjson.Get(body, "aiResponse.confidence").Float())
	assert.True(s.T(), gjson.Get(body, "result.available").Exists())
}

func (s *TestSuite) TestAgentCreateReservation() {
	reply := `{
		"action": "create_reservation",
		"parameters": {
			"tableId": "table_006",
			"time": "2026-09-14T19:00:00Z",
			"partySize": 6
		},
		"response": "Booked a table for six at 7pm.",
		"confidence": 0.95
	}`
	lib.NewLLMClient(&fakeLLM{reply: reply})

	router := newTestRouter()

	jbody := map[string]any{"prompt": "book a table for 6 tomorrow at 7pm"}
	sbody, _ := json.Marshal(&jbody)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/agent", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	body := string(rbytes)
	assert.Equal(s.T(), "create_reservation", gjson.Get(body, "aiResponse.action").String())
	assert.Equal(s.T(), "table_006", gjson.Get(body, "result.table_id").String())
	assert.Equal(s.T(), "cust_001", gjson.Get(body, "result.customer_id").String())

	var count int64
	dbi.Model(&models.Reservation{}).
		Where(&models.Reservation{TableID: "table_006", Status: types.RESERVATION_CONFIRMED}).
		Count(&count)
	assert.EqualValues(s.T(), 1, count)
}

func (s *TestSuite) TestAgentMissingPrompt() {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/agent", strings.NewReader("{}"))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 400, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	assert.Equal(s.T(), "Prompt is required", gjson.Get(string(rbytes), "error").String())
}

func (s *TestSuite) TestAgentConversationalAction() {
	reply := `{
		"action": "suggest_alternatives",
		"parameters": {},
		"response": "How about 8pm instead?",
		"confidence": 0.9
	}`
	lib.NewLLMClient(&fakeLLM{reply: reply})

	router := newTestRouter()

	jbody := map[string]any{"prompt": "anything earlier?"}
	sbody, _ := json.Marshal(&jbody)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/agent", strings.NewReader(string(sbody)))
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
	rbytes, _ := io.ReadAll(w.Body)
	assert.Equal(s.T(), "How about 8pm instead?", gjson.Get(string(rbytes), "result.message").String())
}

func TestAgentDispatchDefaults(t *testing.T) {
	instruction := &types.AgentInstruction{
		Action:     types.ACTION_CREATE_RESERVATION,
		Parameters: types.AgentParameters{},
	}
	_, err := common.DispatchInstruction(instruction)
	assert.NotNil(t, err)
	var fieldErr *common.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "tableId", fieldErr.Field)
}

func TestSuiteRun(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
