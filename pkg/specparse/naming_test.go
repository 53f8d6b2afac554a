package specparse

import "testing"

func TestPackageName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"TR-181", "tr181"},
		{"TR-098", "tr098"},
		{"tr104", "tr104"},
	}
	for _, tt := range tests {
		if got := PackageName(tt.in); got != tt.want {
			t.Errorf("PackageName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestObjectFileName(t *testing.T) {
	tests := []struct {
		root, path, want string
	}{
		{"Device", "Device.DNS.Client.Server.{i}", "dns_client_server"},
		{"Device", "Device.DeviceInfo.MemoryStatus", "deviceinfo_memorystatus"},
		{"VoiceService.{i}", "VoiceService.{i}.VoiceProfile.{i}.Line.{i}", "voiceprofile_line"},
		{"FAP", "FAP.GPS", "gps"},
	}
	for _, tt := range tests {
		if got := ObjectFileName(tt.root, tt.path); got != tt.want {
			t.Errorf("ObjectFileName(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
		}
	}
}

func TestEnumConstSuffix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Enabled", "Enabled"},
		{"Error_Misconfigured", "ErrorMisconfigured"},
		{"802.11", "80211"},
		{"DHCPv6", "DHCPv6"},
		{"lower case", "LowerCase"},
	}
	for _, tt := range tests {
		if got := EnumConstSuffix(tt.in); got != tt.want {
			t.Errorf("EnumConstSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
