package commands

import (
	"context"
	"fmt"
	"os"

	"taskman/pkg/weather"
)

// HandleWeatherCommand processes the -weather command
func HandleWeatherCommand(apiKey, city string) {
	if apiKey == "" {
		fmt.Println("No weather API key configured. Set weather_api_key in the config file or pass -apikey.")
		os.Exit(1)
	}

	client := weather.NewClient(apiKey)
	report, err := client.Current(context.Background(), city)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(report)
}
