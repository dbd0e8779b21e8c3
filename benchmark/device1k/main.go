package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := 0; i < maxDevices; i++ {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

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

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			registerDevice(deviceIDs[i], fmt.Sprintf("bench-%04d", i))
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			postReading(deviceIDs[i])
			fmt.Printf("\rposted reading for device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rposted readings for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)
}

func registerDevice(deviceID, name string) {
	body, _ := json.Marshal(map[string]any{"name": name})
	resp, err := http.Post(
		fmt.Sprintf("http://%s/devices/%s", httpHostPort, deviceID),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Printf("register %s failed: %v", deviceID, err)
		return
	}
	resp.Body.Close()
}

func postReading(deviceID string) {
	body, _ := json.Marshal(map[string]any{
		"timestamp":   time.Now().Format(time.RFC3339),
		"temperature": 18.0 + rnd.Float64()*10,
		"humidity":    40.0 + rnd.Float64()*30,
		"pressure":    1000.0 + rnd.Float64()*25,
		"light":       100.0 + rnd.Float64()*900,
	})
	resp, err := http.Post(
		fmt.Sprintf("http://%s/devices/%s/readings", httpHostPort, deviceID),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Printf("post reading %s failed: %v", deviceID, err)
		return
	}
	resp.Body.Close()
}
