package fiberlog

import (
	log "github.com/sirupsen/logrus"
)

const (
	TagMethod  = "method"
	TagPath    = "path"
	TagStatus  = "status"
	TagLatency = "latency"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

type Config struct {
	Logger *log.Logger
	Tags   []string
}

var ConfigDefault = Config{
	Logger: nil,
	Tags:   []string{TagMethod, TagPath, TagStatus, TagLatency},
}
