package service

import "github.com/MKhiriev/go-smart-cards/models"

const demoDeckName = "Demo Deck (Korean Basics)"

// demoDeckCards are seeded into the first deck of every guest.
var demoDeckCards = []models.CardDraft{
	{Front: "Hello / Hi", Back: "안녕하세요"},
	{Front: "Thank you", Back: "감사합니다"},
	{Front: "Yes", Back: "네"},
	{Front: "No", Back: "아니요"},
	{Front: "Please give me...", Back: "주세요"},
	{Front: "Water", Back: "물"},
	{Front: "Food", Back: "음식"},
	{Front: "Goodbye (to someone leaving)", Back: "안녕히 가세요"},
}
