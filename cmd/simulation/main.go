package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const baseURL = "http://localhost:3000/api"

// Simplified DTOs for the script
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type createDocumentResponse struct {
	Id string `json:"id"`
}

type planResponse struct {
	Plan      string `json:"plan"`
	PlanState string `json:"plan_state"`
}

type finalizeResponse struct {
	Sections []struct {
		Id    string `json:"id"`
		Title string `json:"title"`
	} `json:"sections"`
}

type evaluationResponse struct {
	OverallScore int      `json:"overall_score"`
	Improvements []string `json:"improvements"`
}

func main() {
	fmt.Println("=== Document Authoring Simulation Client ===")

	docID, err := createDocument()
	if err != nil {
		log.Fatalf("Failed to create document: %v", err)
	}
	fmt.Printf("Document Created: %s\n", docID)

	plan, err := generatePlan(docID)
	if err != nil {
		log.Fatalf("Failed to generate plan: %v", err)
	}
	fmt.Printf("\nPLAN (%s):\n%s\n", plan.PlanState, plan.Plan)

	refined, err := refinePlan(docID, "Make it shorter and add a pricing section")
	if err != nil {
		log.Fatalf("Failed to refine plan: %v", err)
	}
	fmt.Printf("\nREFINED PLAN:\n%s\n", refined.Plan)

	sections, err := finalizePlan(docID)
	if err != nil {
		log.Fatalf("Failed to finalize plan: %v", err)
	}
	fmt.Printf("\nFinalized into %d sections:\n", len(sections.Sections))
	for _, s := range sections.Sections {
		fmt.Printf("  - %s (%s)\n", s.Title, s.Id)
	}

	if err := post(fmt.Sprintf("%s/section/v1/%s/generate-all", baseURL, docID), nil, nil); err != nil {
		log.Fatalf("Failed to start generation: %v", err)
	}
	fmt.Println("\nGeneration run started; watch ws://localhost:3000/ws/progress/" + docID)

	// Crude wait for the background run; the websocket stream is the real
	// progress channel, this script just polls afterwards.
	time.Sleep(30 * time.Second)

	var eval evaluationResponse
	if err := post(fmt.Sprintf("%s/evaluation/v1/%s/evaluate", baseURL, docID), nil, &eval); err != nil {
		log.Fatalf("Failed to evaluate: %v", err)
	}
	fmt.Printf("\nEVALUATION: overall %d\n", eval.OverallScore)
	for _, imp := range eval.Improvements {
		fmt.Printf("  - %s\n", imp)
	}
}

func createDocument() (string, error) {
	var res createDocumentResponse
	err := post(baseURL+"/document/v1", map[string]string{
		"title":   "Atlas 2.0 Launch Announcement",
		"purpose": "Announce the Atlas 2.0 release to existing customers",
	}, &res)
	return res.Id, err
}

func generatePlan(docID string) (*planResponse, error) {
	var res planResponse
	err := post(fmt.Sprintf("%s/plan/v1/%s/generate", baseURL, docID), nil, &res)
	return &res, err
}

func refinePlan(docID, feedback string) (*planResponse, error) {
	var res planResponse
	err := post(fmt.Sprintf("%s/plan/v1/%s/refine", baseURL, docID), map[string]string{"feedback": feedback}, &res)
	return &res, err
}

func finalizePlan(docID string) (*finalizeResponse, error) {
	var res finalizeResponse
	err := post(fmt.Sprintf("%s/plan/v1/%s/finalize", baseURL, docID), nil, &res)
	return &res, err
}

func post(url string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest("POST", url, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API Error %d: %s", resp.StatusCode, string(raw))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	return json.Unmarshal(env.Data, out)
}
