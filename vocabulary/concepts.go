package vocabulary

// Built-in concept definitions, organized by category:
//
//	ENT:   entities (data, agents, resources, objects)
//	ACT:   actions (query, analyze, create, transform, update, delete,
//	       process, communicate, control, security)
//	PROP:  properties and qualities
//	REL:   relationships between entities
//	LOG:   logical operators and conditions
//	MATH:  mathematical operations
//	TIME:  temporal concepts
//	SPACE: spatial relationships
//	DATA:  data types and structures
//	META:  protocol control and status
//
// Each entry carries a description and informal synonyms used by
// substring search. The set registers itself during package
// initialization; applications add their own concepts with Register.

type conceptDef struct {
	id          string
	description string
	examples    []string
}

var builtinConcepts = []conceptDef{
	// Entities: data
	{"ENT.DATA.TEXT", "Text data or document", []string{"string", "document", "article"}},
	{"ENT.DATA.IMAGE", "Image data", []string{"picture", "photo", "graphic"}},
	{"ENT.DATA.VIDEO", "Video data", []string{"movie", "clip", "recording"}},
	{"ENT.DATA.AUDIO", "Audio data", []string{"sound", "music", "speech"}},
	{"ENT.DATA.NUMBER", "Numeric data", []string{"integer", "float", "decimal"}},
	{"ENT.DATA.BOOLEAN", "Boolean value", []string{"true", "false", "flag"}},
	{"ENT.DATA.JSON", "JSON formatted data", []string{"object", "structure"}},
	{"ENT.DATA.XML", "XML formatted data", []string{"markup", "structure"}},
	{"ENT.DATA.CSV", "CSV formatted data", []string{"spreadsheet", "table"}},
	{"ENT.DATA.BINARY", "Binary data", []string{"bytes", "blob", "raw"}},
	{"ENT.DATA.GRAPH", "Graph or network data", []string{"nodes", "edges"}},
	{"ENT.DATA.TABLE", "Tabular data", []string{"rows", "columns", "grid"}},
	{"ENT.DATA.VECTOR", "Vector embedding data", []string{"embedding", "feature"}},
	{"ENT.DATA.LOG", "Log data", []string{"entries", "records", "trace"}},

	// Entities: agents
	{"ENT.AGENT.AI", "Artificial intelligence agent", []string{"bot", "assistant", "model"}},
	{"ENT.AGENT.HUMAN", "Human user or operator", []string{"user", "person", "operator"}},
	{"ENT.AGENT.SERVICE", "Service or microservice", []string{"api", "endpoint"}},
	{"ENT.AGENT.SYSTEM", "System or platform", []string{"platform", "infrastructure"}},
	{"ENT.AGENT.ORCHESTRATOR", "Orchestration agent", []string{"coordinator", "conductor"}},
	{"ENT.AGENT.MONITOR", "Monitoring agent", []string{"watcher", "observer"}},
	{"ENT.AGENT.GATEWAY", "Gateway or entry point", []string{"ingress", "entry"}},
	{"ENT.AGENT.SCHEDULER", "Scheduling agent", []string{"cron", "timer"}},
	{"ENT.AGENT.WORKER", "Worker process agent", []string{"executor", "runner"}},
	{"ENT.AGENT.ROUTER", "Message router", []string{"dispatcher", "switch"}},
	{"ENT.AGENT.VALIDATOR", "Validation agent", []string{"checker", "verifier"}},

	// Entities: resources
	{"ENT.RESOURCE.DATABASE", "Database system", []string{"db", "storage"}},
	{"ENT.RESOURCE.FILE", "File system resource", []string{"document", "file"}},
	{"ENT.RESOURCE.API", "API endpoint", []string{"endpoint", "interface"}},
	{"ENT.RESOURCE.NETWORK", "Network resource", []string{"connection", "socket"}},
	{"ENT.RESOURCE.QUEUE", "Message queue", []string{"queue", "buffer"}},
	{"ENT.RESOURCE.STORAGE", "Storage system", []string{"disk", "volume"}},
	{"ENT.RESOURCE.BROKER", "Message broker", []string{"kafka", "rabbitmq"}},
	{"ENT.RESOURCE.CACHE", "Cache system", []string{"redis", "memcached"}},
	{"ENT.RESOURCE.VAULT", "Secret vault", []string{"secrets", "keystore"}},

	// Entities: objects
	{"ENT.OBJECT.MODEL", "ML model or data model", []string{"neural net", "schema"}},
	{"ENT.OBJECT.SCHEMA", "Data schema definition", []string{"structure", "blueprint"}},
	{"ENT.OBJECT.CONFIG", "Configuration object", []string{"settings", "preferences"}},
	{"ENT.OBJECT.TOKEN", "Authentication token", []string{"jwt", "session token"}},
	{"ENT.OBJECT.SESSION", "User or agent session", []string{"context", "connection"}},
	{"ENT.OBJECT.CERTIFICATE", "Security certificate", []string{"ssl", "x509"}},
	{"ENT.OBJECT.KEY", "Cryptographic key", []string{"secret", "public key"}},
	{"ENT.OBJECT.EVENT", "System event", []string{"notification", "signal"}},
	{"ENT.OBJECT.TASK", "Task or work item", []string{"job", "unit of work"}},
	{"ENT.OBJECT.WORKFLOW", "Workflow definition", []string{"process", "pipeline"}},
	{"ENT.OBJECT.METRIC", "Performance metric", []string{"measurement", "kpi"}},
	{"ENT.OBJECT.ALERT", "Alert or alarm", []string{"warning", "notification"}},
	{"ENT.OBJECT.REPORT", "Report or summary", []string{"analysis", "document"}},
	{"ENT.OBJECT.MESSAGE", "Message or communication", []string{"packet", "payload"}},
	{"ENT.OBJECT.SNAPSHOT", "State snapshot", []string{"checkpoint", "backup"}},

	// Actions: query
	{"ACT.QUERY.DATA", "Query for data or information", []string{"select", "get", "fetch"}},
	{"ACT.QUERY.STATUS", "Query status or state", []string{"check", "ping", "health"}},
	{"ACT.QUERY.SCHEMA", "Query schema or structure", []string{"describe", "schema"}},
	{"ACT.QUERY.COUNT", "Query count or quantity", []string{"count", "tally"}},
	{"ACT.QUERY.EXISTS", "Check if resource exists", []string{"exists", "has"}},
	{"ACT.QUERY.LIST", "List available items", []string{"enumerate", "browse"}},
	{"ACT.QUERY.SEARCH", "Search for matching items", []string{"find", "lookup"}},
	{"ACT.QUERY.METADATA", "Query metadata", []string{"info", "properties"}},
	{"ACT.QUERY.HISTORY", "Query historical data", []string{"log", "audit trail"}},
	{"ACT.QUERY.CAPABILITY", "Query agent capabilities", []string{"features", "support"}},
	{"ACT.QUERY.VERSION", "Query version info", []string{"release", "build"}},
	{"ACT.QUERY.HEALTH", "Health check query", []string{"heartbeat", "alive"}},

	// Actions: analyze
	{"ACT.ANALYZE.SENTIMENT", "Analyze sentiment", []string{"emotion", "mood"}},
	{"ACT.ANALYZE.PATTERN", "Analyze patterns", []string{"trend", "correlation"}},
	{"ACT.ANALYZE.STATISTICS", "Statistical analysis", []string{"stats", "metrics"}},
	{"ACT.ANALYZE.CLASSIFY", "Classify or categorize", []string{"categorize", "label"}},
	{"ACT.ANALYZE.EXTRACT", "Extract information", []string{"parse", "mine"}},
	{"ACT.ANALYZE.PREDICT", "Predict outcomes", []string{"forecast", "project"}},
	{"ACT.ANALYZE.DETECT", "Detect anomalies", []string{"identify", "spot"}},
	{"ACT.ANALYZE.COMPARE", "Compare items", []string{"diff", "contrast"}},
	{"ACT.ANALYZE.RANK", "Rank or score items", []string{"rate", "prioritize"}},
	{"ACT.ANALYZE.VALIDATE", "Validate data quality", []string{"verify", "check"}},
	{"ACT.ANALYZE.EMBED", "Create embeddings", []string{"vectorize", "encode"}},

	// Actions: create
	{"ACT.CREATE.TEXT", "Generate text", []string{"write", "compose"}},
	{"ACT.CREATE.IMAGE", "Generate image", []string{"draw", "render"}},
	{"ACT.CREATE.RECORD", "Create database record", []string{"insert", "add"}},
	{"ACT.CREATE.FILE", "Create file", []string{"make", "generate"}},
	{"ACT.CREATE.SESSION", "Create session", []string{"open", "establish"}},
	{"ACT.CREATE.TOKEN", "Create auth token", []string{"issue", "generate"}},
	{"ACT.CREATE.TASK", "Create task or job", []string{"schedule", "queue"}},
	{"ACT.CREATE.EVENT", "Create event", []string{"emit", "trigger"}},
	{"ACT.CREATE.SNAPSHOT", "Create snapshot", []string{"checkpoint", "backup"}},
	{"ACT.CREATE.REPORT", "Generate report", []string{"compile", "produce"}},
	{"ACT.CREATE.LINK", "Create link or reference", []string{"connect", "associate"}},

	// Actions: transform
	{"ACT.TRANSFORM.TRANSLATE", "Translate languages", []string{"localize", "i18n"}},
	{"ACT.TRANSFORM.CONVERT", "Convert format", []string{"change", "reformat"}},
	{"ACT.TRANSFORM.ENCODE", "Encode data", []string{"serialize", "pack"}},
	{"ACT.TRANSFORM.DECODE", "Decode data", []string{"deserialize", "unpack"}},
	{"ACT.TRANSFORM.SUMMARIZE", "Summarize content", []string{"condense", "abstract"}},
	{"ACT.TRANSFORM.COMPRESS", "Compress data", []string{"zip", "deflate"}},
	{"ACT.TRANSFORM.HASH", "Hash data", []string{"digest", "checksum"}},
	{"ACT.TRANSFORM.NORMALIZE", "Normalize data", []string{"standardize", "clean"}},
	{"ACT.TRANSFORM.MERGE", "Merge data sources", []string{"combine", "join"}},
	{"ACT.TRANSFORM.SPLIT", "Split data", []string{"partition", "chunk"}},
	{"ACT.TRANSFORM.ENRICH", "Enrich with metadata", []string{"augment", "annotate"}},
	{"ACT.TRANSFORM.REDACT", "Redact sensitive data", []string{"mask", "anonymize"}},

	// Actions: update
	{"ACT.UPDATE.DATA", "Update existing data", []string{"modify", "change"}},
	{"ACT.UPDATE.STATUS", "Update status", []string{"set", "change"}},
	{"ACT.UPDATE.CONFIG", "Update configuration", []string{"configure", "adjust"}},
	{"ACT.UPDATE.METADATA", "Update metadata", []string{"tag", "annotate"}},
	{"ACT.UPDATE.STATE", "Update state machine", []string{"transition", "advance"}},
	{"ACT.UPDATE.PATCH", "Partial update", []string{"patch", "amend"}},
	{"ACT.UPDATE.REFRESH", "Refresh or reload", []string{"reload", "sync"}},

	// Actions: delete
	{"ACT.DELETE.DATA", "Delete data or records", []string{"remove", "erase"}},
	{"ACT.DELETE.FILE", "Delete file", []string{"unlink", "destroy"}},
	{"ACT.DELETE.SESSION", "End session", []string{"close", "terminate"}},
	{"ACT.DELETE.TOKEN", "Revoke token", []string{"invalidate", "expire"}},
	{"ACT.DELETE.CACHE", "Clear cache", []string{"flush", "invalidate"}},

	// Actions: process
	{"ACT.PROCESS.BATCH", "Process batch", []string{"bulk", "mass"}},
	{"ACT.PROCESS.STREAM", "Process stream", []string{"flow", "pipe"}},
	{"ACT.PROCESS.VALIDATE", "Validate data", []string{"verify", "check"}},
	{"ACT.PROCESS.FILTER", "Filter data", []string{"select", "screen"}},
	{"ACT.PROCESS.SORT", "Sort data", []string{"order", "arrange"}},
	{"ACT.PROCESS.AGGREGATE", "Aggregate data", []string{"combine", "merge"}},
	{"ACT.PROCESS.RETRY", "Retry operation", []string{"reattempt", "repeat"}},
	{"ACT.PROCESS.ROLLBACK", "Rollback operation", []string{"undo", "revert"}},
	{"ACT.PROCESS.COMMIT", "Commit transaction", []string{"finalize", "confirm"}},
	{"ACT.PROCESS.CANCEL", "Cancel operation", []string{"abort", "stop"}},
	{"ACT.PROCESS.EXECUTE", "Execute command", []string{"run", "invoke"}},
	{"ACT.PROCESS.DISPATCH", "Dispatch to handler", []string{"route", "forward"}},

	// Actions: communicate
	{"ACT.COMMUNICATE.SEND", "Send message", []string{"transmit", "deliver"}},
	{"ACT.COMMUNICATE.RECEIVE", "Receive message", []string{"accept", "get"}},
	{"ACT.COMMUNICATE.BROADCAST", "Broadcast to all", []string{"multicast", "publish"}},
	{"ACT.COMMUNICATE.SUBSCRIBE", "Subscribe to topic", []string{"listen", "follow"}},
	{"ACT.COMMUNICATE.PUBLISH", "Publish message", []string{"emit", "announce"}},
	{"ACT.COMMUNICATE.REQUEST", "Send request", []string{"ask", "invoke"}},
	{"ACT.COMMUNICATE.RESPOND", "Send response", []string{"reply", "answer"}},
	{"ACT.COMMUNICATE.ACKNOWLEDGE", "Acknowledge receipt", []string{"ack", "confirm"}},
	{"ACT.COMMUNICATE.NOTIFY", "Send notification", []string{"alert", "inform"}},
	{"ACT.COMMUNICATE.PING", "Ping for liveness", []string{"heartbeat", "check"}},
	{"ACT.COMMUNICATE.HANDSHAKE", "Protocol handshake", []string{"negotiate", "init"}},
	{"ACT.COMMUNICATE.SYNC", "Synchronize state", []string{"reconcile", "align"}},
	{"ACT.COMMUNICATE.FORWARD", "Forward message", []string{"relay", "proxy"}},

	// Actions: control
	{"ACT.CONTROL.START", "Start process", []string{"begin", "launch"}},
	{"ACT.CONTROL.STOP", "Stop process", []string{"halt", "terminate"}},
	{"ACT.CONTROL.RESTART", "Restart process", []string{"reboot", "cycle"}},
	{"ACT.CONTROL.ENABLE", "Enable feature", []string{"activate", "turn on"}},
	{"ACT.CONTROL.DISABLE", "Disable feature", []string{"deactivate", "turn off"}},
	{"ACT.CONTROL.SCALE", "Scale resources", []string{"resize", "adjust"}},
	{"ACT.CONTROL.CONFIGURE", "Configure system", []string{"setup", "tune"}},
	{"ACT.CONTROL.THROTTLE", "Throttle rate", []string{"limit", "slow"}},
	{"ACT.CONTROL.BACKUP", "Backup data", []string{"archive", "save"}},
	{"ACT.CONTROL.RESTORE", "Restore from backup", []string{"recover", "unarchive"}},

	// Actions: security
	{"ACT.SECURITY.AUTHENTICATE", "Authenticate identity", []string{"login", "verify"}},
	{"ACT.SECURITY.AUTHORIZE", "Authorize access", []string{"permit", "allow"}},
	{"ACT.SECURITY.SIGN", "Sign data", []string{"seal", "stamp"}},
	{"ACT.SECURITY.VERIFY", "Verify signature", []string{"validate", "check"}},
	{"ACT.SECURITY.REVOKE", "Revoke access", []string{"deny", "block"}},
	{"ACT.SECURITY.ROTATE", "Rotate credentials", []string{"renew", "refresh"}},
	{"ACT.SECURITY.AUDIT", "Security audit", []string{"review", "inspect"}},

	// Properties
	{"PROP.CONFIDENCE.HIGH", "High confidence", []string{"certain", "sure"}},
	{"PROP.CONFIDENCE.MEDIUM", "Medium confidence", []string{"probable", "likely"}},
	{"PROP.CONFIDENCE.LOW", "Low confidence", []string{"uncertain", "tentative"}},
	{"PROP.CONFIDENCE.SCORE", "Numeric confidence score", []string{"probability", "weight"}},
	{"PROP.DETAIL.FULL", "Full detail level", []string{"verbose", "complete"}},
	{"PROP.DETAIL.HIGH", "High detail level", []string{"thorough", "extended"}},
	{"PROP.DETAIL.DEBUG", "Debug detail level", []string{"trace", "diagnostic"}},
	{"PROP.PRIORITY.HIGH", "High priority", []string{"urgent", "critical"}},
	{"PROP.PRIORITY.NORMAL", "Normal priority", []string{"standard", "default"}},
	{"PROP.PRIORITY.LOW", "Low priority", []string{"background", "deferred"}},
	{"PROP.STATE.ACTIVE", "Active state", []string{"running", "live"}},
	{"PROP.STATE.IDLE", "Idle state", []string{"waiting", "dormant"}},
	{"PROP.STATE.FAILED", "Failed state", []string{"error", "broken"}},

	// Relations
	{"REL.PART.OF", "Component of a whole", []string{"member", "belongs"}},
	{"REL.CHILD.OF", "Child in a hierarchy", []string{"descendant", "under"}},
	{"REL.ALIAS.OF", "Alternative name for", []string{"synonym", "aka"}},
	{"REL.CAUSES", "Causal relationship", []string{"leads to", "produces"}},
	{"REL.CAUSED.BY", "Inverse causal relationship", []string{"due to", "because"}},
	{"REL.BEFORE", "Precedes in order", []string{"earlier", "prior"}},
	{"REL.AFTER", "Follows in order", []string{"later", "subsequent"}},
	{"REL.DEPENDS.ON", "Dependency relationship", []string{"requires", "needs"}},
	{"REL.BLOCKED.BY", "Blocked by another item", []string{"waiting on", "stuck"}},
	{"REL.ASSIGNED.TO", "Assignment relationship", []string{"owner", "responsible"}},

	// Logic
	{"LOG.AND", "Logical conjunction", []string{"both", "all"}},
	{"LOG.OR", "Logical disjunction", []string{"either", "any"}},
	{"LOG.NOT", "Logical negation", []string{"inverse", "complement"}},
	{"LOG.IF", "Conditional", []string{"when", "condition"}},
	{"LOG.ELSE", "Alternative branch", []string{"otherwise", "fallback"}},
	{"LOG.EQUALS", "Equality comparison", []string{"same", "identical"}},
	{"LOG.CONTAINS", "Membership test", []string{"includes", "has"}},
	{"LOG.BETWEEN", "Range test", []string{"within", "bounded"}},

	// Mathematics
	{"MATH.ADD", "Addition", []string{"sum", "plus"}},
	{"MATH.SUBTRACT", "Subtraction", []string{"difference", "minus"}},
	{"MATH.MULTIPLY", "Multiplication", []string{"product", "times"}},
	{"MATH.DIVIDE", "Division", []string{"quotient", "ratio"}},
	{"MATH.AVERAGE", "Arithmetic mean", []string{"mean", "avg"}},
	{"MATH.MEDIAN", "Median value", []string{"middle", "p50"}},
	{"MATH.MIN", "Minimum value", []string{"smallest", "lowest"}},
	{"MATH.MAX", "Maximum value", []string{"largest", "highest"}},
	{"MATH.COUNT", "Count of items", []string{"tally", "cardinality"}},
	{"MATH.PERCENTILE", "Percentile computation", []string{"quantile", "p99"}},
	{"MATH.NORMALIZE", "Normalize values", []string{"scale", "unit"}},

	// Temporal
	{"TIME.NOW", "Current moment", []string{"present", "immediately"}},
	{"TIME.BEFORE", "Earlier than reference", []string{"prior", "preceding"}},
	{"TIME.AFTER", "Later than reference", []string{"subsequent", "following"}},
	{"TIME.DURING", "Within an interval", []string{"while", "throughout"}},
	{"TIME.DURATION", "Length of an interval", []string{"elapsed", "span"}},
	{"TIME.CREATED", "Creation instant", []string{"born", "established"}},
	{"TIME.EXPIRED", "Past its validity", []string{"stale", "lapsed"}},
	{"TIME.DEADLINE", "Latest allowed instant", []string{"due", "cutoff"}},
	{"TIME.INTERVAL", "Recurring period", []string{"every", "periodic"}},

	// Spatial
	{"SPACE.ABOVE", "Above a reference", []string{"over", "higher"}},
	{"SPACE.BELOW", "Below a reference", []string{"under", "lower"}},
	{"SPACE.NEAR", "Close to a reference", []string{"nearby", "adjacent"}},
	{"SPACE.FAR", "Distant from a reference", []string{"remote", "away"}},
	{"SPACE.CENTER", "Central position", []string{"middle", "core"}},
	{"SPACE.BOUNDARY", "Edge of a region", []string{"border", "perimeter"}},
	{"SPACE.UPSTREAM", "Earlier in a flow", []string{"source", "producer"}},
	{"SPACE.DOWNSTREAM", "Later in a flow", []string{"sink", "consumer"}},
	{"SPACE.DISTRIBUTED", "Spread across locations", []string{"federated", "sharded"}},

	// Data types
	{"DATA.STRING", "String value", []string{"text", "chars"}},
	{"DATA.INTEGER", "Integer value", []string{"int", "whole number"}},
	{"DATA.FLOAT", "Floating point value", []string{"double", "real"}},
	{"DATA.BOOLEAN", "Boolean value", []string{"true", "false"}},
	{"DATA.NULL", "Null or absent value", []string{"nil", "none"}},
	{"DATA.LIST", "Ordered sequence", []string{"array", "vector"}},
	{"DATA.DICT", "Key-value mapping", []string{"map", "object"}},
	{"DATA.SET", "Unordered unique collection", []string{"distinct", "unique"}},
	{"DATA.TIMESTAMP", "Point-in-time value", []string{"datetime", "instant"}},
	{"DATA.DURATION", "Time span value", []string{"interval", "elapsed"}},
	{"DATA.UUID", "Universally unique identifier", []string{"guid", "identifier"}},
	{"DATA.URI", "Uniform resource identifier", []string{"url", "link"}},
	{"DATA.STREAM", "Unbounded data sequence", []string{"flow", "feed"}},
	{"DATA.JSON.OBJECT", "JSON object value", []string{"document", "record"}},
	{"DATA.JSON.ARRAY", "JSON array value", []string{"list", "collection"}},
	{"DATA.MSGPACK.OBJ", "MessagePack object value", []string{"binary object", "packed"}},

	// Meta / protocol control
	{"META.ACK", "Positive acknowledgement", []string{"ok", "received"}},
	{"META.NACK", "Negative acknowledgement", []string{"rejected", "refused"}},
	{"META.CANCEL", "Cancel prior request", []string{"abort", "withdraw"}},
	{"META.STATUS.OK", "Operation succeeded", []string{"success", "done"}},
	{"META.STATUS.ERROR", "Operation failed", []string{"failure", "fault"}},
	{"META.STATUS.PENDING", "Operation in progress", []string{"running", "busy"}},
	{"META.STATUS.TIMEOUT", "Operation timed out", []string{"expired", "deadline"}},
	{"META.ERROR.VALIDATION", "Validation error", []string{"invalid"}},
	{"META.ERROR.TIMEOUT", "Timeout error", []string{"expired"}},
	{"META.ERROR.NOT_FOUND", "Resource not found", []string{"missing"}},
	{"META.ERROR.PERMISSION", "Permission denied", []string{"forbidden"}},
	{"META.ERROR.NETWORK", "Network error", []string{"connection"}},
	{"META.ERROR.GENERAL", "General error", []string{"unknown"}},
	{"META.ERROR.INTERNAL", "Internal server error", []string{"bug"}},
	{"META.ERROR.CONFLICT", "Resource conflict", []string{"duplicate"}},
	{"META.ERROR.RATE_LIMIT", "Rate limit exceeded", []string{"throttled"}},
	{"META.ERROR.QUOTA", "Quota exceeded", []string{"limit"}},
	{"META.ERROR.UNAVAILABLE", "Service unavailable", []string{"down"}},
	{"META.ERROR.UNSUPPORTED", "Unsupported operation", []string{"not implemented"}},
	{"META.CAP.BATCH", "Batch processing capability", []string{"bulk support"}},
	{"META.CAP.STREAM", "Streaming capability", []string{"stream support"}},
	{"META.CAP.CACHE", "Caching capability", []string{"cache support"}},
	{"META.AUDIT.CREATE", "Audit record: created", []string{"provenance"}},
	{"META.AUDIT.UPDATE", "Audit record: updated", []string{"modification trail"}},
	{"META.AUDIT.DELETE", "Audit record: deleted", []string{"removal trail"}},
	{"META.AUDIT.LOGIN", "Audit record: login", []string{"session start"}},
	{"META.AUDIT.SECURITY.EVENT", "Audit record: security event", []string{"incident"}},
}

func init() {
	for _, def := range builtinConcepts {
		Register(def.id,
			WithDescription(def.description),
			WithExamples(def.examples...))
	}
}
