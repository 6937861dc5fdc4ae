// Package message implements the JAUS message schema catalog: the command
// and query/inform pairs whose payload codecs build on the wire, header,
// addr, and eventlimit packages.
package message

// Command codes identifying each schema's header.CommandCode. The core
// and platform messages follow the JAUS command-code numbering convention
// (commands below 0x1000, queries 0x2000-0x2FFF, informs 0x4000-0x4FFF).
// The experimental messages do not form a range of their own: CreateEvent
// (0x01F0) sits among the commands, and ReportServices (0x2FFF) and
// ReportIdentification (0x2FFE) sit at the top of the query range.
const (
	CCSetWrenchEffort            uint16 = 0x0405
	CCRequestComponentControl    uint16 = 0x0001
	CCQueryWrenchEffort          uint16 = 0x2406
	CCQueryPlatformSpecifications uint16 = 0x2409
	CCReportVelocityState        uint16 = 0x4404
	CCReportWaypointCount        uint16 = 0x4003
	CCCreateEvent                uint16 = 0x01F0
	CCReportServices             uint16 = 0x2FFF
	CCReportIdentification       uint16 = 0x2FFE
)
