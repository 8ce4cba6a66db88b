package dashboard

import (
	"github.com/pratik-mahalle/fraudguard/internal/domain/alert"
	"github.com/pratik-mahalle/fraudguard/internal/domain/transaction"
	"github.com/pratik-mahalle/fraudguard/internal/domain/user"
)

// Headline holds the top-of-page daily figures
type Headline struct {
	TotalTransactions int     `json:"totalTransactions" yaml:"totalTransactions"`
	FraudDetected     int     `json:"fraudDetected" yaml:"fraudDetected"`
	FraudRate         float64 `json:"fraudRate" yaml:"fraudRate"`
	Blocked           int     `json:"blocked" yaml:"blocked"`
	UnderReview       int     `json:"underReview" yaml:"underReview"`
	FalsePositives    int     `json:"falsePositives" yaml:"falsePositives"`
}

// HourlyActivity compares transaction volume with fraud detections
type HourlyActivity struct {
	Time         string `json:"time" yaml:"time"`
	Transactions int    `json:"transactions" yaml:"transactions"`
	Fraud        int    `json:"fraud" yaml:"fraud"`
}

// RiskShare is one slice of the risk distribution, in percent
type RiskShare struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	Color string `json:"color" yaml:"color"`
}

// FraudType counts detections of one fraud pattern
type FraudType struct {
	Type  string `json:"type" yaml:"type"`
	Count int    `json:"count" yaml:"count"`
	Trend string `json:"trend" yaml:"trend"`
}

// DailyRate is the fraud rate for one weekday, in percent
type DailyRate struct {
	Day       string  `json:"day" yaml:"day"`
	FraudRate float64 `json:"fraudRate" yaml:"fraudRate"`
}

// Indicators are the key risk metrics needing attention
type Indicators struct {
	HighRiskUsers  int `json:"highRiskUsers" yaml:"highRiskUsers"`
	NewDevices     int `json:"newDevices" yaml:"newDevices"`
	SuspiciousIPs  int `json:"suspiciousIps" yaml:"suspiciousIps"`
	RulesTriggered int `json:"rulesTriggered" yaml:"rulesTriggered"`
}

// Datasets are the static chart series shown on the dashboard
type Datasets struct {
	Headline         Headline         `json:"headline" yaml:"headline"`
	HourlyActivity   []HourlyActivity `json:"hourlyActivity" yaml:"hourlyActivity"`
	RiskDistribution []RiskShare      `json:"riskDistribution" yaml:"riskDistribution"`
	FraudTypes       []FraudType      `json:"fraudTypes" yaml:"fraudTypes"`
	WeeklyTrend      []DailyRate      `json:"weeklyTrend" yaml:"weeklyTrend"`
	Indicators       Indicators       `json:"indicators" yaml:"indicators"`
}

// Overview joins the static datasets with live aggregates
type Overview struct {
	Datasets     Datasets             `json:"datasets"`
	Alerts       *alert.Summary       `json:"alerts"`
	Transactions *transaction.Summary `json:"transactions"`
	Users        *user.Summary        `json:"users"`
}
