package model

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInsumoFilter_Matches(t *testing.T) {
	record := Insumo{
		DataSolicitacao: day(2024, time.January, 15),
		Solicitante:     "Ana",
		CentroCusto:     "IT",
		Status:          "Aprovado",
	}

	from := day(2024, time.January, 15)
	to := day(2024, time.January, 15)
	before := day(2024, time.January, 16)
	after := day(2024, time.January, 14)

	cases := []struct {
		name   string
		filter InsumoFilter
		want   bool
	}{
		{"empty filter matches everything", InsumoFilter{}, true},
		{"centro exact match", InsumoFilter{CentroCusto: "IT"}, true},
		{"centro mismatch", InsumoFilter{CentroCusto: "it"}, false},
		{"status mismatch", InsumoFilter{Status: "Pendente"}, false},
		{"solicitante match", InsumoFilter{Solicitante: "Ana"}, true},
		{"range inclusive on both ends", InsumoFilter{DataInicio: &from, DataFim: &to}, true},
		{"below range", InsumoFilter{DataInicio: &before}, false},
		{"above range", InsumoFilter{DataFim: &after}, false},
		{"all constraints AND together", InsumoFilter{CentroCusto: "IT", Status: "Aprovado", Solicitante: "Bruno"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.Matches(record); got != tc.want {
				t.Errorf("Matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{day(2024, time.January, 31), "01/2024"},
		{day(2024, time.December, 1), "12/2024"},
		{day(1999, time.September, 15), "09/1999"},
	}
	for _, tc := range cases {
		if got := MonthKey(tc.date); got != tc.want {
			t.Errorf("MonthKey(%v) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestBucketLabels(t *testing.T) {
	var empty Insumo
	if got := empty.CentroCustoLabel(); got != CentroCustoNaoInformado {
		t.Errorf("CentroCustoLabel() = %q, want sentinel %q", got, CentroCustoNaoInformado)
	}
	if got := empty.StatusLabel(); got != SemStatus {
		t.Errorf("StatusLabel() = %q, want sentinel %q", got, SemStatus)
	}

	filled := Insumo{CentroCusto: "IT", Status: "Aprovado"}
	if filled.CentroCustoLabel() != "IT" || filled.StatusLabel() != "Aprovado" {
		t.Errorf("non-empty labels must pass through, got %q / %q", filled.CentroCustoLabel(), filled.StatusLabel())
	}
}
