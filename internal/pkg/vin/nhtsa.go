package vin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// NHTSAProvider decodes VINs against the free NHTSA vPIC API.
type NHTSAProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewNHTSAProvider returns a provider against the public vPIC endpoint.
func NewNHTSAProvider() *NHTSAProvider {
	return &NHTSAProvider{
		BaseURL: "https://vpic.nhtsa.dot.gov/api",
		Client:  http.DefaultClient,
	}
}

type vpicResponse struct {
	Results []struct {
		Variable string `json:"Variable"`
		Value    string `json:"Value"`
	} `json:"Results"`
}

// Decode implements Provider against the vPIC DecodeVin endpoint.
func (p *NHTSAProvider) Decode(ctx context.Context, vin string) (*VehicleInfo, error) {
	url := fmt.Sprintf("%s/vehicles/DecodeVin/%s?format=json", p.BaseURL, vin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vPIC API returned status %d", resp.StatusCode)
	}

	var body vpicResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode vPIC response: %v", err)
	}

	info := &VehicleInfo{
		VIN:          vin,
		WMI:          vin[:3],
		Model:        "Unknown",
		Engine:       "Unknown",
		Transmission: "Unknown",
		BodyStyle:    "Unknown",
		FuelType:     "Unknown",
	}
	for _, r := range body.Results {
		if r.Value == "" || r.Value == "Not Applicable" {
			continue
		}
		switch r.Variable {
		case "Make":
			info.Make = r.Value
		case "Model":
			info.Model = r.Value
		case "Model Year":
			if year, err := strconv.Atoi(r.Value); err == nil {
				info.Year = year
			}
		case "Engine Model":
			info.Engine = r.Value
		case "Transmission Style":
			info.Transmission = r.Value
		case "Body Class":
			info.BodyStyle = r.Value
		case "Fuel Type - Primary":
			info.FuelType = r.Value
		}
	}
	if info.Make == "" {
		return nil, fmt.Errorf("vPIC response contained no make for %s", vin)
	}
	return info, nil
}
