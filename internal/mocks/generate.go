package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LeagueProvider --dir ../usecase --output provider --outpkg providermock --filename league_provider_mock.go
