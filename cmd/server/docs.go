package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Marketboard API
// @version         0.1.0
// @description     Read-only prediction-market dashboard: ranked live markets, categories, and bet simulation.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
