package main

import (
	"log"

	"tenderdesk-be/internal/model"

	"gorm.io/gorm"
)

// SeedNotificationTypes populates the event-to-notification registry.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "TENDER_TRACKING_ADDED",
			DisplayName: "Tender Added to Board",
			Template:    "\"{title}\" was added to the tracking board ({stage})",
			TargetType:  "ROLE",
			TargetRole:  "manager",
			IsActive:    true,
		},
		{
			Code:        "TENDER_TRACKING_REMOVED",
			DisplayName: "Tender Removed from Board",
			Template:    "Tender {tender_id} was removed from the tracking board",
			TargetType:  "ROLE",
			TargetRole:  "manager",
			IsActive:    true,
		},
		{
			Code:        "TENDER_STAGE_MOVED",
			DisplayName: "Tender Stage Changed",
			Template:    "Tender moved from {from} to {to}",
			TargetType:  "ROLE",
			TargetRole:  "manager",
			IsActive:    true,
		},
		{
			Code:        "SNAPSHOT_RUN_COMPLETED",
			DisplayName: "Daily Snapshot Completed",
			Template:    "Snapshot run for {date}: {created} captured, {absences} absences",
			TargetType:  "ADMIN",
			IsActive:    true,
		},
		{
			Code:        "DOCUMENT_UPLOADED",
			DisplayName: "Document Uploaded",
			Template:    "You uploaded \"{name}\"",
			TargetType:  "SELF",
			IsActive:    true,
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			IsActive:    true,
		},
	}

	for _, t := range types {
		var existing model.NotificationType
		err := db.Where("code = ?", t.Code).First(&existing).Error
		if err == nil {
			continue // already seeded, leave operator edits alone
		}
		if err := db.Create(&t).Error; err != nil {
			log.Printf("Warn: Failed to seed notification type %s: %v", t.Code, err)
			continue
		}
		log.Printf("Seeded notification type: %s", t.Code)
	}
}
