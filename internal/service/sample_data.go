package service

import (
	"fmt"
	"log"

	"room-review-backend/internal/models"
	"room-review-backend/internal/registry"
)

type sampleFloor struct {
	floor     string
	count     int
	equipment models.Equipment
}

// InitSampleData seeds the MG office with a realistic set of reviewed
// rooms. Floors already at capacity are skipped, so re-running the seed
// does not fail the whole operation. Returns how many rooms were created.
func (s *RoomService) InitSampleData() (int, error) {
	floors := []sampleFloor{
		{floor: "13", count: 5, equipment: models.Equipment{TV: true, RemoteControl: true, Videoconference: true}},
		{floor: "12", count: 4, equipment: models.Equipment{TV: true, RemoteControl: true, Videoconference: true, Manual: true}},
		{floor: "10", count: 3, equipment: models.Equipment{TV: true, RemoteControl: true}},
		{floor: "9", count: 4, equipment: models.Equipment{TV: true, RemoteControl: true}},
		{floor: "8", count: 4, equipment: models.Equipment{TV: true, RemoteControl: true, ExtensionLine: true}},
	}

	created := 0
	for _, f := range floors {
		for i := 0; i < f.count; i++ {
			room, err := s.registry.CreateRoom("MG", f.floor)
			if err != nil {
				log.Printf("Warning: skipping sample room on MG floor %s: %v", f.floor, err)
				break
			}
			note := "OK"
			if f.floor == "12" && i == f.count-1 {
				note = "Equipamento com cabo HDMI apresentando problemas"
			}
			if _, err := s.registry.RecordReview(room.ID, registry.ReviewInput{
				Equipment: f.equipment,
				Note:      note,
			}); err != nil {
				return created, err
			}
			created++
		}
	}

	if created == 0 {
		return 0, nil
	}

	if err := s.audit.Record("sample_data", fmt.Sprintf("Seeded %d sample rooms", created)); err != nil {
		log.Printf("Warning: failed to write audit log: %v", err)
	}

	return created, s.persist()
}
