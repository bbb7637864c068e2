package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// catalog of plausible inventory for demo data
var catalog = []struct {
	Brand  string
	Model  string
	CC     float64
	HP     float64
	Floor  float64 // rough acquisition floor price
}{
	{"Honda", "CB500F", 471, 47, 3200},
	{"Honda", "Africa Twin", 1084, 101, 9500},
	{"Yamaha", "MT-07", 689, 73, 4800},
	{"Yamaha", "Tenere 700", 689, 72, 7200},
	{"Kawasaki", "Ninja 650", 649, 67, 4500},
	{"Kawasaki", "Z900", 948, 125, 6300},
	{"Suzuki", "SV650", 645, 75, 3900},
	{"Ducati", "Monster 937", 937, 111, 8900},
	{"Triumph", "Street Triple", 765, 118, 7800},
	{"BMW", "F 850 GS", 853, 90, 8600},
	{"KTM", "390 Duke", 373, 44, 3100},
	{"Harley-Davidson", "Iron 883", 883, 50, 6800},
}

var colors = []string{"Black", "White", "Red", "Blue", "Matte Gray", "Green", "Orange"}

var stages = []string{"Acquisition", "Evaluation", "Servicing", "Media", "Listed"}

var partCategories = []string{"Brakes", "Tires", "Chain & Sprockets", "Bodywork", "Electrical", "Exhaust"}

var suppliers = []string{"MotoSupply Co", "RevZone Parts", "TwoWheel Wholesale", "OEM Direct"}

type seedClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func (c *seedClient) post(path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("POST %s: %s: %s", path, resp.Status, payload)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// login registers the seed user if needed and fetches a token.
func (c *seedClient) login(company string) error {
	register := map[string]interface{}{
		"company_id": company,
		"username":   "seeder",
		"email":      "seeder@" + company + ".example",
		"password":   "seeder-password",
		"first_name": "Seed",
		"last_name":  "Bot",
		"role":       "manager",
	}
	var session struct {
		Token string `json:"token"`
	}
	if err := c.post("/api/auth/register", register, &session); err != nil {
		// Already registered on a previous run; fall back to login.
		login := map[string]string{"username": "seeder", "password": "seeder-password"}
		if err := c.post("/api/auth/login", login, &session); err != nil {
			return err
		}
	}
	c.token = session.Token
	return nil
}

func randomBike(rng *rand.Rand) map[string]interface{} {
	spec := catalog[rng.Intn(len(catalog))]
	year := 2015 + rng.Intn(10)
	acquisition := spec.Floor * (0.85 + rng.Float64()*0.3)
	lowSale := acquisition * (1.15 + rng.Float64()*0.15)
	highSale := lowSale * (1.1 + rng.Float64()*0.15)

	bike := map[string]interface{}{
		"name":                fmt.Sprintf("%d %s %s", year, spec.Brand, spec.Model),
		"brand":               spec.Brand,
		"model":               spec.Model,
		"year":                year,
		"vin":                 fmt.Sprintf("SEED%012d", rng.Int63n(1e12)),
		"mileage":             float64(rng.Intn(42000)),
		"color":               colors[rng.Intn(len(colors))],
		"displacement":        spec.CC,
		"horsepower":          spec.HP,
		"acquisition_price":   round2(acquisition),
		"projected_low_sale":  round2(lowSale),
		"projected_high_sale": round2(highSale),
		"projected_low_cost":  round2(150 + rng.Float64()*250),
		"projected_high_cost": round2(400 + rng.Float64()*600),
		"projected_costs":     round2(200 + rng.Float64()*400),
		"stage":               stages[rng.Intn(len(stages))],
		"date_acquired":       time.Now().AddDate(0, -rng.Intn(10), -rng.Intn(28)).Format("2006-01-02"),
	}

	// Roughly a third of the seed inventory is already sold.
	if rng.Intn(3) == 0 {
		sale := lowSale + rng.Float64()*(highSale-lowSale)
		bike["stage"] = "Sold"
		bike["actual_sale_price"] = round2(sale)
		bike["actual_list_price"] = round2(highSale)
		bike["date_sold"] = time.Now().AddDate(0, -rng.Intn(6), -rng.Intn(28)).Format("2006-01-02")
	}
	return bike
}

func randomPart(rng *rand.Rand) map[string]interface{} {
	return map[string]interface{}{
		"cost":         round2(25 + rng.Float64()*400),
		"date":         time.Now().AddDate(0, 0, -rng.Intn(90)).Format("2006-01-02"),
		"payment_type": "card",
		"category":     partCategories[rng.Intn(len(partCategories))],
		"condition":    "new",
		"supplier":     suppliers[rng.Intn(len(suppliers))],
	}
}

func randomService(rng *rand.Rand) map[string]interface{} {
	if rng.Intn(2) == 0 {
		return map[string]interface{}{
			"cost":             round2(60 + rng.Float64()*300),
			"date":             time.Now().AddDate(0, 0, -rng.Intn(90)).Format("2006-01-02"),
			"payment_type":     "cash",
			"service_location": "In-House",
			"hours":            round2(0.5 + rng.Float64()*5),
			"technician":       "Shop Tech",
		}
	}
	return map[string]interface{}{
		"cost":             round2(120 + rng.Float64()*500),
		"date":             time.Now().AddDate(0, 0, -rng.Intn(90)).Format("2006-01-02"),
		"payment_type":     "check",
		"service_location": "Out-Sourced",
		"service_provider": "Precision Moto Works",
	}
}

func randomTransport(rng *rand.Rand) map[string]interface{} {
	return map[string]interface{}{
		"cost":         round2(40 + rng.Float64()*220),
		"date":         time.Now().AddDate(0, 0, -rng.Intn(90)).Format("2006-01-02"),
		"payment_type": "card",
		"type":         "pickup",
		"location":     "Auction Lot B",
		"company":      "HaulFast Logistics",
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	company := os.Getenv("SEED_COMPANY")
	if company == "" {
		company = "demo-moto"
	}
	count := 20
	if raw := os.Getenv("SEED_COUNT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			count = parsed
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	client := &seedClient{baseURL: baseURL, client: &http.Client{Timeout: 10 * time.Second}}

	if err := client.login(company); err != nil {
		log.WithError(err).Fatal("failed to authenticate seed user")
	}
	log.WithFields(log.Fields{"company": company, "count": count}).Info("seeding inventory")

	bikesPath := "/api/companies/" + company + "/bikes"
	for i := 0; i < count; i++ {
		var created struct {
			ID string `json:"id"`
		}
		if err := client.post(bikesPath, randomBike(rng), &created); err != nil {
			log.WithError(err).Error("failed to create bike")
			continue
		}

		entryBase := bikesPath + "/" + created.ID
		for j := rng.Intn(4); j > 0; j-- {
			if err := client.post(entryBase+"/parts", randomPart(rng), nil); err != nil {
				log.WithError(err).Warn("failed to create part entry")
			}
		}
		for j := rng.Intn(3); j > 0; j-- {
			if err := client.post(entryBase+"/services", randomService(rng), nil); err != nil {
				log.WithError(err).Warn("failed to create service entry")
			}
		}
		if rng.Intn(2) == 0 {
			if err := client.post(entryBase+"/transports", randomTransport(rng), nil); err != nil {
				log.WithError(err).Warn("failed to create transport entry")
			}
		}
		log.WithField("bike", i+1).Debug("seeded bike")
	}

	log.Info("seeding complete")
}
