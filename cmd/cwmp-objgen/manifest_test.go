package main

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cwmp-model/cwmp-go/pkg/specparse"
)

func TestDeriveParameterIndex(t *testing.T) {
	output, err := DeriveParameterIndex([]*specparse.RawModel{dnsModel()})
	if err != nil {
		t.Fatalf("DeriveParameterIndex failed: %v", err)
	}

	mustContain(t, output, "# Code generated by cwmp-objgen. DO NOT EDIT.")
	mustContain(t, output, "  TR-181:")
	mustContain(t, output, `    version: "2.11"`)
	mustContain(t, output, "    package: tr181")
	mustContain(t, output, `      "Device.DNS.Client.Server.{i}":`)
	mustContain(t, output, "        table: true")
	mustContain(t, output, "{ name: Enable, type: boolean }")
	mustContain(t, output, "{ name: Weights, type: unsignedInt, list: true }")
	mustContain(t, output, "        children: [Server]")
	mustContain(t, output, "        unique: [[DNSServer], [Alias]]")
}

func TestDeriveParameterIndex_IsYAML(t *testing.T) {
	output, err := DeriveParameterIndex([]*specparse.RawModel{dnsModel()})
	if err != nil {
		t.Fatalf("DeriveParameterIndex failed: %v", err)
	}

	var index struct {
		Models map[string]struct {
			Version string `yaml:"version"`
			Objects map[string]struct {
				Type       string `yaml:"type"`
				Table      bool   `yaml:"table"`
				Parameters struct {
					ReadWrite []map[string]any `yaml:"readWrite"`
					ReadOnly  []map[string]any `yaml:"readOnly"`
				} `yaml:"parameters"`
				Unique [][]string `yaml:"unique"`
			} `yaml:"objects"`
		} `yaml:"models"`
	}
	if err := yaml.Unmarshal([]byte(output), &index); err != nil {
		t.Fatalf("index is not valid YAML: %v", err)
	}

	server := index.Models["TR-181"].Objects["Device.DNS.Client.Server.{i}"]
	if server.Type != "DNSClientServer" || !server.Table {
		t.Errorf("server entry = %+v", server)
	}
	if len(server.Parameters.ReadWrite) != 2 {
		t.Errorf("len(readWrite) = %d, want 2", len(server.Parameters.ReadWrite))
	}
	if len(server.Unique) != 2 {
		t.Errorf("len(unique) = %d, want 2", len(server.Unique))
	}
}

func TestDeriveParameterIndex_MissingVersion(t *testing.T) {
	m := dnsModel()
	m.Def.Version = ""
	if _, err := DeriveParameterIndex([]*specparse.RawModel{m}); err == nil {
		t.Error("expected error for model without version")
	}
}
