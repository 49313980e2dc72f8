package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxSites int = 1000
var maxPersonnel int = 100
var httpHostPort string = "127.0.0.1:1080"

var municipalities = []string{
	"Tagbilaran City", "Panglao", "Dauis", "Tubigon", "Talibon",
	"Ubay", "Jagna", "Carmen", "Loon", "Anda",
}

var statuses = []string{"Active", "Unstable", "Unavailable"}
var signals = []string{"Strong", "Moderate", "Weak"}

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type createResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	personnelNames := make([]string, maxPersonnel)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxPersonnel; i++ {
		i := i
		wg.Add(1)
		go func() {
			personnelNames[i] = insertPersonnel()
			fmt.Printf("\rinserted personnel %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted %v personnel: used time=%v seconds, throughput=%v action/second\n",
		maxPersonnel, usedTime.Seconds(), float64(maxPersonnel)/usedTime.Seconds(),
	)

	siteIDs := make([]uint, maxSites)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxSites; i++ {
		i := i
		wg.Add(1)
		go func() {
			siteIDs[i] = insertSite(personnelNames[rnd.Intn(maxPersonnel)])
			fmt.Printf("\rinserted site %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted %v sites: used time=%v seconds, throughput=%v action/second\n",
		maxSites, usedTime.Seconds(), float64(maxSites)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxSites; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(siteIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v sites: used time=%v seconds, throughput=%v action/second\n",
		maxSites, usedTime.Seconds(), float64(maxSites*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func postJSON(path string, payload any) *createResponse {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var parsed createResponse
	if err := json.Unmarshal(body, &parsed); err != nil || !parsed.Success {
		panic(fmt.Sprintf("err: %v, status: %v, body: %s", err, resp.StatusCode, body))
	}
	return &parsed
}

func insertPersonnel() string {
	name := "Tech-" + uuid.NewString()
	postJSON("/api/personnel", map[string]string{
		"name":  name,
		"role":  "Field Technician",
		"email": name + "@example.com",
	})
	return name
}

func insertSite(assignedPersonnel string) uint {
	municipality := municipalities[rnd.Intn(len(municipalities))]
	parsed := postJSON("/api/sites", map[string]any{
		"name":              "Site-" + uuid.NewString(),
		"location":          municipality,
		"lat":               rndFloat64(9.5, 10.2, 4),
		"lng":               rndFloat64(123.7, 124.6, 4),
		"municipality":      municipality,
		"status":            statuses[rnd.Intn(len(statuses))],
		"signal":            signals[rnd.Intn(len(signals))],
		"assignedPersonnel": assignedPersonnel,
	})
	return parsed.Data.ID
}

func doAction(siteID uint) {
	actions := []func(){
		genUpdateSiteAction(siteID),
		genListSitesAction(),
		genGetAnalyticsAction(),
	}
	actionNames := []string{
		"UpdateSite",
		"ListSites",
		"GetAnalytics",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for site %v", actionNames[index], siteID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genUpdateSiteAction(siteID uint) func() {
	return func() {
		payload := map[string]string{
			"status": statuses[rnd.Intn(len(statuses))],
			"signal": signals[rnd.Intn(len(signals))],
		}
		jsonData, _ := json.Marshal(payload)
		req, _ := http.NewRequest(http.MethodPut,
			fmt.Sprintf("http://%s/api/sites/%d", httpHostPort, siteID), bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genListSitesAction() func() {
	return func() {
		municipality := url.QueryEscape(municipalities[rnd.Intn(len(municipalities))])
		resp, err := http.Get(fmt.Sprintf("http://%s/api/sites?municipality=%s", httpHostPort, municipality))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetAnalyticsAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/analytics", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
