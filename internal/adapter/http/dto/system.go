package dto

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

type InstanceInfo struct {
	Message                string `json:"message"`
	BackendInstance        string `json:"backendInstance"`
	NginxForwardedInstance string `json:"nginxForwardedInstance"`
}

type WhoAmI struct {
	Hostname string `json:"hostname"`
	PID      int    `json:"pid"`
}
