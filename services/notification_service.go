package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"society-billing-service/config"
	"society-billing-service/models"
	"society-billing-service/utils"
)

// Topics for billing events consumed by operator dashboards
const (
	TopicBillCreated       = "society/billing/bills/created"
	TopicBillStatusChanged = "society/billing/bills/status"
	TopicFineSync          = "society/billing/fines/sync"
)

// InterfaceNotificationService defines the billing event publisher interface
type InterfaceNotificationService interface {
	Connect() error
	PublishBillCreated(bill *models.Bill)
	PublishBillStatusChanged(bill *models.Bill, oldStatus models.BillStatus)
	PublishFineSync(houseID uint, status models.BillStatus, updated, failed int)
	Close()
}

// NotificationService publishes billing lifecycle events over MQTT.
// Publishing is strictly best-effort: a missing broker or failed connect
// disables the publisher and the billing operation proceeds without it.
type NotificationService struct {
	Config  *config.Config
	client  mqtt.Client
	enabled bool
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg *config.Config) InterfaceNotificationService {
	return &NotificationService{Config: cfg}
}

// Connect establishes the broker connection. An empty broker URL leaves
// the publisher disabled, which is the default deployment.
func (s *NotificationService) Connect() error {
	if s.Config.MQTTBrokerURL == "" {
		log.Println("MQTT broker not configured, billing event notifications disabled")
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.Config.MQTTBrokerURL).
		SetClientID(fmt.Sprintf("%s-%d", s.Config.MQTTClientID, utils.RandomInt32())).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		return fmt.Errorf("MQTT connect failed: %v", token.Error())
	}

	s.client = client
	s.enabled = true
	log.Printf("MQTT connected to %s", s.Config.MQTTBrokerURL)
	return nil
}

// PublishBillCreated announces a newly issued bill
func (s *NotificationService) PublishBillCreated(bill *models.Bill) {
	s.publish(TopicBillCreated, map[string]interface{}{
		"bill_id":  bill.ID,
		"house_id": bill.HouseID,
		"amount":   bill.Amount,
		"month":    bill.Month.Format("2006-01"),
		"due_date": bill.DueDate.Format("2006-01-02"),
		"status":   bill.Status,
	})
}

// PublishBillStatusChanged announces a bill status transition
func (s *NotificationService) PublishBillStatusChanged(bill *models.Bill, oldStatus models.BillStatus) {
	s.publish(TopicBillStatusChanged, map[string]interface{}{
		"bill_id":    bill.ID,
		"house_id":   bill.HouseID,
		"old_status": oldStatus,
		"new_status": bill.Status,
	})
}

// PublishFineSync announces the outcome of a fine status synchronization run
func (s *NotificationService) PublishFineSync(houseID uint, status models.BillStatus, updated, failed int) {
	s.publish(TopicFineSync, map[string]interface{}{
		"house_id": houseID,
		"status":   status,
		"updated":  updated,
		"failed":   failed,
	})
}

// Close disconnects from the broker
func (s *NotificationService) Close() {
	if s.enabled && s.client != nil {
		s.client.Disconnect(250)
		s.enabled = false
	}
}

func (s *NotificationService) publish(topic string, payload interface{}) {
	if !s.enabled {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("MQTT payload marshal failed on %s: %v", topic, err)
		return
	}

	token := s.client.Publish(topic, 0, false, data)
	if !token.WaitTimeout(2*time.Second) || token.Error() != nil {
		log.Printf("MQTT publish failed on %s: %v", topic, token.Error())
	}
}
