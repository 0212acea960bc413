package catalog

// defaultNodeTypes is the full registry of diagram component types.
// It must stay in sync with the canvas frontend's node palette.
var defaultNodeTypes = []NodeType{
	{
		ID:          "web-server",
		Label:       "Web Server",
		Description: "Serves HTTP/HTTPS requests and hosts web applications. Handles incoming client requests and serves responses.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Express.js", "Flask", "Sinatra", "Node.js", "FastAPI", "Django"},
			TierHeavy:       {"Nginx", "Apache", "AWS ALB", "Kubernetes Ingress", "HAProxy", "Traefik"},
		},
		UseCases: []string{
			"Hosting web applications and APIs",
			"Serving static content",
			"Handling HTTP/HTTPS requests",
			"Application servers for business logic",
		},
	},
	{
		ID:          "database",
		Label:       "Database",
		Description: "Stores and manages structured data persistently. Provides data persistence and query capabilities.",
		Technologies: map[Tier][]string{
			TierLightweight: {"SQLite", "PostgreSQL (Single)", "MySQL (Single)", "MongoDB (Single)"},
			TierHeavy:       {"PostgreSQL Cluster", "MongoDB Sharded", "DynamoDB", "Cassandra", "CockroachDB", "AWS RDS Multi-AZ", "Azure Cosmos DB"},
		},
		UseCases: []string{
			"Storing application data",
			"User data and authentication",
			"Transaction records",
			"Relational or NoSQL data storage",
		},
	},
	{
		ID:          "worker",
		Label:       "Worker",
		Description: "Background processing service that handles asynchronous tasks and long-running operations.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Node.js Worker", "Python Worker", "Background Job Processor", "Celery (Single)"},
			TierHeavy:       {"Kubernetes Job", "AWS Lambda", "Celery Workers", "Sidekiq Workers", "Bull Queue Cluster"},
		},
		UseCases: []string{
			"Background job processing",
			"Image/video processing",
			"Data transformation tasks",
			"Scheduled tasks and cron jobs",
		},
	},
	{
		ID:          "cache",
		Label:       "Cache",
		Description: "High-speed temporary storage for frequently accessed data to improve performance and reduce latency.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Redis (Single)", "In-Memory Cache", "Node Cache", "Memcached (Single)"},
			TierHeavy:       {"Redis Cluster", "Memcached Pool", "AWS ElastiCache", "Hazelcast", "Apache Ignite"},
		},
		UseCases: []string{
			"Caching database query results",
			"Session storage",
			"API response caching",
			"Reducing database load",
		},
	},
	{
		ID:          "queue",
		Label:       "Queue",
		Description: "Message queue system that enables asynchronous communication and task distribution between services.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Redis Queue", "RabbitMQ (Single)", "Bull Queue", "Beanstalkd"},
			TierHeavy:       {"Kafka Cluster", "AWS SQS", "RabbitMQ Cluster", "Google Pub/Sub", "Azure Service Bus", "NATS"},
		},
		UseCases: []string{
			"Task queuing and processing",
			"Decoupling services",
			"Handling peak loads",
			"Reliable message delivery",
		},
	},
	{
		ID:          "storage",
		Label:       "Storage",
		Description: "Object storage or file storage system for storing files, media, and unstructured data.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Local Storage", "Simple S3 Bucket", "File System", "MinIO"},
			TierHeavy:       {"AWS S3", "Azure Blob Storage", "Google Cloud Storage", "Distributed File System", "Ceph"},
		},
		UseCases: []string{
			"File storage (images, documents)",
			"Object storage (S3-style)",
			"Media files and assets",
			"Backup and archival storage",
		},
	},
	{
		ID:          "third-party-api",
		Label:       "Third-party API",
		Description: "External service or API that your system integrates with. Represents dependencies on external services.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Stripe API", "Twilio API", "SendGrid API", "Generic REST API"},
			TierHeavy:       {"Stripe Enterprise", "Twilio Enterprise", "SendGrid Enterprise", "AWS Marketplace APIs"},
		},
		UseCases: []string{
			"Payment processing APIs",
			"Authentication services (OAuth)",
			"Email/SMS services",
			"External data providers",
		},
	},
	{
		ID:          "compute-node",
		Label:       "Compute Node",
		Description: "Generic compute resource for processing tasks, running containers, or executing code.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Docker Container", "Simple VM", "Local Compute"},
			TierHeavy:       {"Kubernetes Node", "AWS ECS", "Azure Container Instances", "Google Cloud Run"},
		},
		UseCases: []string{
			"Container orchestration nodes",
			"Serverless function execution",
			"Batch processing",
			"General-purpose compute resources",
		},
	},
	{
		ID:          "load-balancer",
		Label:       "Load Balancer",
		Description: "Distributes incoming network traffic across multiple servers to ensure high availability and performance.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Nginx (Basic)", "HAProxy (Basic)", "Simple Load Balancer"},
			TierHeavy:       {"AWS ALB", "AWS NLB", "Kubernetes Ingress", "HAProxy Enterprise", "F5 BIG-IP"},
		},
		UseCases: []string{
			"Distributing traffic across web servers",
			"High availability and redundancy",
			"SSL termination",
			"Traffic routing and health checks",
		},
	},
	{
		ID:          "message-broker",
		Label:       "Message Broker",
		Description: "Middleware that enables communication between distributed systems using publish-subscribe or message queue patterns.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Redis Pub/Sub", "Simple Event Bus", "RabbitMQ (Single)"},
			TierHeavy:       {"Apache Kafka", "AWS EventBridge", "RabbitMQ Cluster", "NATS", "Google Pub/Sub", "Azure Event Hubs"},
		},
		UseCases: []string{
			"Event-driven architectures",
			"Microservices communication",
			"Real-time messaging",
			"Pub/sub messaging patterns",
		},
	},
	{
		ID:          "cdn",
		Label:       "CDN",
		Description: "Content Delivery Network that caches and serves content from edge locations close to users for faster delivery.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Cloudflare Free", "Optional CDN"},
			TierHeavy:       {"AWS CloudFront", "Fastly", "Cloudflare Enterprise", "Akamai", "Azure CDN"},
		},
		UseCases: []string{
			"Serving static assets globally",
			"Reducing latency for users",
			"Offloading traffic from origin servers",
			"Video streaming and media delivery",
		},
	},
	{
		ID:          "monitoring",
		Label:       "Monitoring Service",
		Description: "Service that collects metrics, logs, and traces to monitor system health, performance, and availability.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Basic Logging", "Console Logs", "Simple Metrics", "Winston", "Pino"},
			TierHeavy:       {"Prometheus + Grafana", "Datadog", "New Relic", "AWS CloudWatch", "Splunk", "Elastic Stack"},
		},
		UseCases: []string{
			"Application performance monitoring",
			"Infrastructure metrics",
			"Log aggregation and analysis",
			"Alerting and incident management",
		},
	},
	{
		ID:          "api-gateway",
		Label:       "API Gateway",
		Description: "Single entry point for API requests that handles routing, authentication, rate limiting, and request/response transformation.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Express Gateway", "Kong (Basic)", "Simple API Router"},
			TierHeavy:       {"AWS API Gateway", "Kong Enterprise", "Azure API Management", "Apigee", "Tyk"},
		},
		UseCases: []string{
			"API request routing and load balancing",
			"Authentication and authorization",
			"Rate limiting and throttling",
			"Request/response transformation",
		},
	},
	{
		ID:          "dns",
		Label:       "DNS",
		Description: "Domain Name System service that translates domain names to IP addresses and manages DNS records.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Cloudflare DNS", "Simple DNS", "Route53 Basic"},
			TierHeavy:       {"AWS Route53", "Azure DNS", "Google Cloud DNS", "DNS Made Easy"},
		},
		UseCases: []string{
			"Domain name resolution",
			"Load balancing via DNS",
			"CDN routing",
			"Service discovery",
		},
	},
	{
		ID:          "vpc-network",
		Label:       "VPC / Network",
		Description: "Virtual Private Cloud or network infrastructure that provides isolated network environments for resources.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Simple Network", "Local Network"},
			TierHeavy:       {"AWS VPC", "Azure Virtual Network", "Google Cloud VPC", "Multi-Region VPC"},
		},
		UseCases: []string{
			"Network isolation and security",
			"Private network segments",
			"Subnet management",
			"Network routing and connectivity",
		},
	},
	{
		ID:          "vpn-link",
		Label:       "VPN / Private Link",
		Description: "Virtual Private Network or private link that provides secure, encrypted connections between networks or services.",
		Technologies: map[Tier][]string{
			TierLightweight: {"OpenVPN", "WireGuard", "Simple VPN"},
			TierHeavy:       {"AWS VPN", "Azure VPN Gateway", "Google Cloud VPN", "AWS PrivateLink"},
		},
		UseCases: []string{
			"Secure remote access",
			"Site-to-site connectivity",
			"Private service connections",
			"Encrypted data transmission",
		},
	},
	{
		ID:          "auth-service",
		Label:       "Auth Service",
		Description: "Authentication service that handles user login, session management, and authentication tokens.",
		Technologies: map[Tier][]string{
			TierLightweight: {"JWT Auth", "Passport.js", "Simple Auth Service"},
			TierHeavy:       {"Auth0", "AWS Cognito", "Azure AD", "Okta", "Keycloak"},
		},
		UseCases: []string{
			"User authentication",
			"Session management",
			"Token generation and validation",
			"Single sign-on (SSO)",
		},
	},
	{
		ID:          "identity-provider",
		Label:       "Identity Provider (IdP)",
		Description: "Identity provider that manages user identities and provides authentication services (e.g., OAuth, SAML).",
		Technologies: map[Tier][]string{
			TierLightweight: {"OAuth 2.0", "Simple IdP", "Social Login"},
			TierHeavy:       {"Okta", "Azure AD", "Google Identity", "AWS SSO", "Ping Identity"},
		},
		UseCases: []string{
			"OAuth/OIDC authentication",
			"SAML-based SSO",
			"Social login integration",
			"Centralized identity management",
		},
	},
	{
		ID:          "secrets-manager",
		Label:       "Secrets Manager",
		Description: "Service for securely storing and managing secrets, API keys, passwords, and certificates.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Environment Variables", "Simple Secrets", ".env files"},
			TierHeavy:       {"AWS Secrets Manager", "Azure Key Vault", "HashiCorp Vault", "Google Secret Manager"},
		},
		UseCases: []string{
			"API key management",
			"Password and credential storage",
			"Certificate management",
			"Secure configuration storage",
		},
	},
	{
		ID:          "waf",
		Label:       "Web Application Firewall",
		Description: "Security service that filters and monitors HTTP/HTTPS traffic to protect web applications from attacks.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Cloudflare WAF (Free)", "Basic Firewall"},
			TierHeavy:       {"AWS WAF", "Azure Application Gateway WAF", "Cloudflare Enterprise WAF", "F5 Advanced WAF"},
		},
		UseCases: []string{
			"SQL injection prevention",
			"XSS attack protection",
			"DDoS mitigation",
			"Rate limiting and bot protection",
		},
	},
	{
		ID:          "search-engine",
		Label:       "Search Engine",
		Description: "Search service that provides full-text search capabilities for applications and data.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Elasticsearch (Single)", "Simple Search", "PostgreSQL Full-Text"},
			TierHeavy:       {"Elasticsearch Cluster", "AWS OpenSearch", "Azure Cognitive Search", "Solr Cloud"},
		},
		UseCases: []string{
			"Full-text search",
			"Product search",
			"Document search",
			"Real-time search indexing",
		},
	},
	{
		ID:          "data-warehouse",
		Label:       "Data Warehouse",
		Description: "Centralized repository for storing and analyzing large volumes of structured data for business intelligence.",
		Technologies: map[Tier][]string{
			TierLightweight: {"PostgreSQL (Analytics)", "Simple Data Warehouse"},
			TierHeavy:       {"Snowflake", "AWS Redshift", "Google BigQuery", "Azure Synapse", "Databricks"},
		},
		UseCases: []string{
			"Business intelligence and analytics",
			"Data aggregation and reporting",
			"Historical data analysis",
			"ETL data processing",
		},
	},
	{
		ID:          "stream-processor",
		Label:       "Stream Processor",
		Description: "Service that processes continuous streams of data in real-time for analytics and event processing.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Kafka Streams (Basic)", "Simple Stream Processor"},
			TierHeavy:       {"Apache Flink", "Apache Spark Streaming", "AWS Kinesis", "Google Cloud Dataflow"},
		},
		UseCases: []string{
			"Real-time data processing",
			"Event stream processing",
			"Real-time analytics",
			"Streaming ETL pipelines",
		},
	},
	{
		ID:          "etl-job",
		Label:       "ETL / Batch Job",
		Description: "Extract, Transform, Load job that processes data in batches for data integration and transformation.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Python Script", "Simple ETL", "Cron Job"},
			TierHeavy:       {"Apache Airflow", "AWS Glue", "Azure Data Factory", "dbt", "Talend"},
		},
		UseCases: []string{
			"Data integration",
			"Batch data processing",
			"Data transformation pipelines",
			"Scheduled data migrations",
		},
	},
	{
		ID:          "scheduler",
		Label:       "Scheduler / Cron",
		Description: "Service that schedules and executes tasks, jobs, or workflows at specified times or intervals.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Cron", "Node-cron", "Simple Scheduler"},
			TierHeavy:       {"AWS EventBridge", "Azure Scheduler", "Google Cloud Scheduler", "Quartz Scheduler"},
		},
		UseCases: []string{
			"Scheduled task execution",
			"Cron job management",
			"Workflow scheduling",
			"Periodic data processing",
		},
	},
	{
		ID:          "serverless-function",
		Label:       "Serverless Function",
		Description: "Event-driven compute service that runs code in response to events without managing servers.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Vercel Function", "Netlify Function", "Simple Lambda", "Cloudflare Workers"},
			TierHeavy:       {"AWS Lambda (Multi-Region)", "Azure Functions", "Google Cloud Functions", "AWS Step Functions"},
		},
		UseCases: []string{
			"Event-driven processing",
			"API endpoints",
			"Background task processing",
			"Microservices architecture",
		},
	},
	{
		ID:          "logging-service",
		Label:       "Logging Service",
		Description: "Service that collects, stores, and analyzes application and system logs for debugging and monitoring.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Winston", "Pino", "Console Logs", "File Logging"},
			TierHeavy:       {"ELK Stack", "AWS CloudWatch Logs", "Azure Monitor", "Splunk", "Datadog Logs"},
		},
		UseCases: []string{
			"Centralized log collection",
			"Log aggregation and storage",
			"Log analysis and search",
			"Debugging and troubleshooting",
		},
	},
	{
		ID:          "alerting-service",
		Label:       "Alerting / Incident Management",
		Description: "Service that monitors system health and sends alerts or manages incidents when issues are detected.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Email Alerts", "Simple Notifications"},
			TierHeavy:       {"PagerDuty", "Opsgenie", "VictorOps", "AWS SNS", "Datadog Alerts"},
		},
		UseCases: []string{
			"System health monitoring",
			"Alert notification",
			"Incident management",
			"On-call management",
		},
	},
	{
		ID:          "status-page",
		Label:       "Status Page / Health Check",
		Description: "Public status page or health check service that displays system availability and service status.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Simple Status Page", "Health Check Endpoint"},
			TierHeavy:       {"Statuspage.io", "Atlassian Statuspage", "Cachet", "Uptime Robot"},
		},
		UseCases: []string{
			"Public service status",
			"Health check endpoints",
			"Service availability monitoring",
			"Incident communication",
		},
	},
	{
		ID:          "orchestrator",
		Label:       "Workflow Orchestrator",
		Description: "Service that orchestrates and manages complex workflows, pipelines, and multi-step processes.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Simple Workflow", "Basic Orchestrator"},
			TierHeavy:       {"Apache Airflow", "AWS Step Functions", "Temporal", "Conductor", "Prefect"},
		},
		UseCases: []string{
			"Workflow management",
			"Pipeline orchestration",
			"Multi-step process coordination",
			"Distributed task coordination",
		},
	},
	{
		ID:          "notification-service",
		Label:       "Notification Service",
		Description: "Service that sends notifications to users via various channels (push, in-app, etc.).",
		Technologies: map[Tier][]string{
			TierLightweight: {"Simple Notifications", "Firebase Cloud Messaging (Basic)"},
			TierHeavy:       {"AWS SNS", "OneSignal", "Pusher", "Twilio Notify", "SendGrid Notifications"},
		},
		UseCases: []string{
			"Push notifications",
			"In-app notifications",
			"User alerts",
			"Multi-channel notifications",
		},
	},
	{
		ID:          "email-service",
		Label:       "Email Service",
		Description: "Service that handles email sending, receiving, and management for applications.",
		Technologies: map[Tier][]string{
			TierLightweight: {"SendGrid", "Mailgun", "Simple SMTP"},
			TierHeavy:       {"AWS SES", "SendGrid Enterprise", "Mailgun Enterprise", "Postmark", "SparkPost"},
		},
		UseCases: []string{
			"Transactional emails",
			"Email marketing",
			"Email delivery",
			"Email templates and management",
		},
	},
	{
		ID:          "webhook-endpoint",
		Label:       "Webhook Endpoint",
		Description: "HTTP endpoint that receives webhook callbacks from external services for event-driven integrations.",
		Technologies: map[Tier][]string{
			TierLightweight: {"Express.js Webhook", "Simple HTTP Endpoint"},
			TierHeavy:       {"AWS API Gateway Webhooks", "Zapier", "Microsoft Power Automate", "Webhook.site"},
		},
		UseCases: []string{
			"Third-party service callbacks",
			"Event-driven integrations",
			"Real-time data synchronization",
			"External service notifications",
		},
	},
	{
		ID:          "web-client",
		Label:       "Web Client",
		Description: "Web browser or web application client that interacts with backend services.",
		Technologies: map[Tier][]string{
			TierLightweight: {"React", "Vue.js", "Angular", "Vanilla JS"},
			TierHeavy:       {"React (SSR)", "Next.js", "Nuxt.js", "Angular Universal", "Progressive Web App"},
		},
		UseCases: []string{
			"Web application frontend",
			"Browser-based clients",
			"User interface",
			"Client-side applications",
		},
	},
	{
		ID:          "mobile-app",
		Label:       "Mobile App",
		Description: "Mobile application (iOS, Android) that interacts with backend services via APIs.",
		Technologies: map[Tier][]string{
			TierLightweight: {"React Native", "Flutter", "Ionic"},
			TierHeavy:       {"Native iOS (Swift)", "Native Android (Kotlin)", "Flutter Enterprise", "React Native Enterprise"},
		},
		UseCases: []string{
			"Mobile application frontend",
			"Native mobile apps",
			"Mobile user interface",
			"Cross-platform mobile apps",
		},
	},
	{
		ID:          "admin-panel",
		Label:       "Admin Panel",
		Description: "Administrative interface for managing and configuring system components and settings.",
		Technologies: map[Tier][]string{
			TierLightweight: {"React Admin", "Simple Dashboard", "Custom Admin UI"},
			TierHeavy:       {"Retool", "AdminJS", "Forest Admin", "Grafana", "Custom Enterprise Dashboard"},
		},
		UseCases: []string{
			"System administration",
			"Configuration management",
			"User management",
			"Dashboard and monitoring",
		},
	},
}
