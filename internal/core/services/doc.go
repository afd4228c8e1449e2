// Package services implements the driving ports: the retrieval pipeline
// that builds style context for a draft, and the style service that
// analyses, renders and scores linguistic DNA profiles.
package services
