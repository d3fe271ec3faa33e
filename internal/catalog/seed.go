package catalog

import (
	"gorm.io/gorm"
)

// Seed loads the master-data tables with the baseline CMDB snapshot.
// Already-populated tables are left alone so a restart never clobbers
// synced data.
func Seed(db *gorm.DB) error {
	if err := seedIfEmpty(db, &Service{}, seedServices); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &SupportGroup{}, seedSupportGroups); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &CIType{}, seedTypes); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &CIFunction{}, seedFunctions); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &Brand{}, seedBrands); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &Location{}, seedLocations); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &Customer{}, seedCustomers); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &System{}, seedSystems); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &Application{}, seedApplications); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &Project{}, seedProjects); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &Supplier{}, seedSuppliers); err != nil {
		return err
	}
	if err := seedIfEmpty(db, &SRRelease{}, seedSRReleases); err != nil {
		return err
	}
	return seedIfEmpty(db, &ConfigurationItem{}, seedConfigurationItems)
}

func seedIfEmpty(db *gorm.DB, model interface{}, rows interface{}) error {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(rows).Error
}

var seedServices = []Service{
	{ID: "SVC001", Service: "APP_DEV", ServiceName: "Application Development", SupportGroup: "DEV_TEAM", SupportGroupName: "Dev Team"},
	{ID: "SVC002", Service: "INFRA", ServiceName: "Infrastructure", SupportGroup: "INFRA_TEAM", SupportGroupName: "Infra Team"},
	{ID: "SVC003", Service: "DB_MGMT", ServiceName: "Database Management", SupportGroup: "DB_TEAM", SupportGroupName: "DB Team"},
	{ID: "SVC004", Service: "CLOUD", ServiceName: "Cloud Services", SupportGroup: "CLOUD_TEAM", SupportGroupName: "Cloud Team"},
	{ID: "SVC005", Service: "SEC", ServiceName: "Security", SupportGroup: "SEC_TEAM", SupportGroupName: "Security Team"},
	{ID: "SVC006", Service: "NET_SVC", ServiceName: "Network Services", SupportGroup: "NET_TEAM", SupportGroupName: "Network Team"},
	{ID: "SVC007", Service: "DATA_ANALYTICS", ServiceName: "Data Analytics", SupportGroup: "ANALYTICS_TEAM", SupportGroupName: "Analytics Team"},
	{ID: "SVC008", Service: "MOBILE_DEV", ServiceName: "Mobile Development", SupportGroup: "MOBILE_TEAM", SupportGroupName: "Mobile Team"},
	{ID: "SVC009", Service: "INT_SVC", ServiceName: "Integration Services", SupportGroup: "INT_TEAM", SupportGroupName: "Integration Team"},
	{ID: "SVC010", Service: "QA", ServiceName: "Testing & QA", SupportGroup: "QA_TEAM", SupportGroupName: "QA Team"},
	{ID: "SVC011", Service: "DEVOPS", ServiceName: "DevOps", SupportGroup: "DEVOPS_TEAM", SupportGroupName: "DevOps Team"},
	{ID: "SVC012", Service: "SUPPORT", ServiceName: "Support Services", SupportGroup: "SUPPORT_TEAM", SupportGroupName: "Support Team"},
}

var seedSupportGroups = []SupportGroup{
	{ID: "SG001", SupportGroup: "DEV_TEAM", SupportGroupName: "Dev Team"},
	{ID: "SG002", SupportGroup: "INFRA_TEAM", SupportGroupName: "Infra Team"},
	{ID: "SG003", SupportGroup: "DB_TEAM", SupportGroupName: "DB Team"},
	{ID: "SG004", SupportGroup: "CLOUD_TEAM", SupportGroupName: "Cloud Team"},
	{ID: "SG005", SupportGroup: "SEC_TEAM", SupportGroupName: "Security Team"},
	{ID: "SG006", SupportGroup: "NET_TEAM", SupportGroupName: "Network Team"},
	{ID: "SG007", SupportGroup: "ANALYTICS_TEAM", SupportGroupName: "Analytics Team"},
	{ID: "SG008", SupportGroup: "MOBILE_TEAM", SupportGroupName: "Mobile Team"},
	{ID: "SG009", SupportGroup: "INT_TEAM", SupportGroupName: "Integration Team"},
	{ID: "SG010", SupportGroup: "QA_TEAM", SupportGroupName: "QA Team"},
	{ID: "SG011", SupportGroup: "DEVOPS_TEAM", SupportGroupName: "DevOps Team"},
	{ID: "SG012", SupportGroup: "SUPPORT_TEAM", SupportGroupName: "Support Team"},
}

var seedTypes = []CIType{
	{ID: "T001", Code: "T001", TypeName: "Server", Category: "Hardware"},
	{ID: "T002", Code: "T002", TypeName: "Laptop", Category: "Hardware"},
	{ID: "T003", Code: "T003", TypeName: "Software Application", Category: "Software"},
	{ID: "T004", Code: "T004", TypeName: "Database", Category: "Software"},
	{ID: "T005", Code: "T005", TypeName: "Network Switch", Category: "Network Link"},
	{ID: "T006", Code: "T006", TypeName: "Documentation", Category: "Document"},
}

var seedFunctions = []CIFunction{
	{ID: "F001", Code: "F001", FunctionName: "Web Server"},
	{ID: "F002", Code: "F002", FunctionName: "Database Server"},
	{ID: "F003", Code: "F003", FunctionName: "Load Balancer"},
	{ID: "F004", Code: "F004", FunctionName: "Backup Server"},
	{ID: "F005", Code: "F005", FunctionName: "Monitoring Server"},
}

var seedBrands = []Brand{
	{ID: "B001", Code: "B001", BrandName: "Dell"},
	{ID: "B002", Code: "B002", BrandName: "HP"},
	{ID: "B003", Code: "B003", BrandName: "Cisco"},
	{ID: "B004", Code: "B004", BrandName: "IBM"},
	{ID: "B005", Code: "B005", BrandName: "Oracle"},
}

var seedLocations = []Location{
	{ID: "L001", Code: "L001", LocationName: "Data Center A", CustomerName: "Internal"},
	{ID: "L002", Code: "L002", LocationName: "Data Center B", CustomerName: "Internal"},
	{ID: "L003", Code: "L003", LocationName: "Cloud Region US-East", CustomerName: "Cloud Provider"},
}

var seedCustomers = []Customer{
	{ID: "C001", Code: "C001", CustomerName: "Internal"},
	{ID: "C002", Code: "C002", CustomerName: "Customer A"},
	{ID: "C003", Code: "C003", CustomerName: "Customer B"},
}

var seedSystems = []System{
	{ID: "SYS001", Code: "ERP", Name: "Enterprise Resource Planning", ServiceID: "SVC001"},
	{ID: "SYS002", Code: "CRM", Name: "Customer Relationship Management", ServiceID: "SVC001"},
	{ID: "SYS003", Code: "HRM", Name: "Human Resource Management", ServiceID: "SVC001"},
	{ID: "SYS004", Code: "FIN", Name: "Financial System", ServiceID: "SVC001"},
	{ID: "SYS005", Code: "SCM", Name: "Supply Chain Management", ServiceID: "SVC001"},
	{ID: "SYS006", Code: "INFRA-SERVER", Name: "Server Infrastructure", ServiceID: "SVC002"},
	{ID: "SYS007", Code: "INFRA-NETWORK", Name: "Network Infrastructure", ServiceID: "SVC002"},
	{ID: "SYS008", Code: "INFRA-STORAGE", Name: "Storage Infrastructure", ServiceID: "SVC002"},
	{ID: "SYS009", Code: "INFRA-MONITOR", Name: "Infrastructure Monitoring", ServiceID: "SVC002"},
	{ID: "SYS010", Code: "DB-ORACLE", Name: "Oracle Database", ServiceID: "SVC003"},
	{ID: "SYS011", Code: "DB-MYSQL", Name: "MySQL Database", ServiceID: "SVC003"},
	{ID: "SYS012", Code: "DB-SQLSERVER", Name: "SQL Server Database", ServiceID: "SVC003"},
	{ID: "SYS013", Code: "DB-MONGODB", Name: "MongoDB Database", ServiceID: "SVC003"},
	{ID: "SYS014", Code: "CLOUD-AWS", Name: "AWS Cloud Services", ServiceID: "SVC004"},
	{ID: "SYS015", Code: "CLOUD-AZURE", Name: "Azure Cloud Services", ServiceID: "SVC004"},
	{ID: "SYS016", Code: "CLOUD-GCP", Name: "Google Cloud Platform", ServiceID: "SVC004"},
	{ID: "SYS017", Code: "SEC-FIREWALL", Name: "Firewall Security", ServiceID: "SVC005"},
	{ID: "SYS018", Code: "SEC-ENCRYPT", Name: "Data Encryption", ServiceID: "SVC005"},
	{ID: "SYS019", Code: "SEC-AUTH", Name: "Authentication System", ServiceID: "SVC005"},
	{ID: "SYS020", Code: "NET-ROUTER", Name: "Network Routing", ServiceID: "SVC006"},
}

var seedApplications = []Application{
	{ID: "APP001", Code: "ERP-WEB", ApplicationName: "ERP Web Portal", SystemID: "SYS001"},
	{ID: "APP002", Code: "ERP-MOB", ApplicationName: "ERP Mobile App", SystemID: "SYS001"},
	{ID: "APP003", Code: "ERP-DESKTOP", ApplicationName: "ERP Desktop Client", SystemID: "SYS001"},
	{ID: "APP004", Code: "CRM-DASH", ApplicationName: "CRM Dashboard", SystemID: "SYS002"},
	{ID: "APP005", Code: "CRM-ANALYTICS", ApplicationName: "CRM Analytics", SystemID: "SYS002"},
	{ID: "APP006", Code: "CRM-MOBILE", ApplicationName: "CRM Mobile App", SystemID: "SYS002"},
	{ID: "APP007", Code: "HR-PORTAL", ApplicationName: "HR Portal", SystemID: "SYS003"},
	{ID: "APP008", Code: "PAYROLL", ApplicationName: "Payroll System", SystemID: "SYS003"},
	{ID: "APP010", Code: "ACCT", ApplicationName: "Accounting Software", SystemID: "SYS004"},
	{ID: "APP013", Code: "INV", ApplicationName: "Inventory Management", SystemID: "SYS005"},
	{ID: "APP016", Code: "SERVER-MGMT", ApplicationName: "Server Management Console", SystemID: "SYS006"},
	{ID: "APP024", Code: "ORACLE-ADMIN", ApplicationName: "Oracle Admin Console", SystemID: "SYS010"},
}

var seedProjects = []Project{
	{ID: "P001", ProjectSaleNumber: "PS001", ProjectName: "ERP Implementation", PONumberGosoft: "PO-G-001", PONumberCustomer: "PO-C-001", Supplier: "Supplier A"},
	{ID: "P002", ProjectSaleNumber: "PS002", ProjectName: "CRM Upgrade", PONumberGosoft: "PO-G-002", PONumberCustomer: "PO-C-002", Supplier: "Supplier B"},
	{ID: "P003", ProjectSaleNumber: "PS003", ProjectName: "HR System Migration", PONumberGosoft: "PO-G-003", PONumberCustomer: "PO-C-003", Supplier: "Supplier C"},
	{ID: "P004", ProjectSaleNumber: "PS004", ProjectName: "Financial Software", PONumberGosoft: "PO-G-004", PONumberCustomer: "PO-C-004", Supplier: "Supplier D"},
	{ID: "P005", ProjectSaleNumber: "PS005", ProjectName: "Supply Chain Optimization", PONumberGosoft: "PO-G-005", PONumberCustomer: "PO-C-005", Supplier: "Supplier E"},
}

var seedSuppliers = []Supplier{
	{ID: "S001", Code: "SUP001", Name: "Supplier A"},
	{ID: "S002", Code: "SUP002", Name: "Supplier B"},
	{ID: "S003", Code: "SUP003", Name: "Supplier C"},
	{ID: "S004", Code: "SUP004", Name: "Supplier D"},
	{ID: "S005", Code: "SUP005", Name: "Supplier E"},
}

var seedSRReleases = []SRRelease{
	{ID: "SR001", ServiceName: "Application Development", DocumentNumber: "SR-001", Status: "Active"},
	{ID: "SR002", ServiceName: "Infrastructure", DocumentNumber: "SR-002", Status: "Pending"},
	{ID: "SR003", ServiceName: "Database Management", DocumentNumber: "SR-003", Status: "Completed"},
	{ID: "SR004", ServiceName: "Cloud Services", DocumentNumber: "SR-004", Status: "Active"},
	{ID: "SR005", ServiceName: "Security", DocumentNumber: "SR-005", Status: "Pending"},
	{ID: "SR006", ServiceName: "Network Services", DocumentNumber: "SR-006", Status: "Active"},
	{ID: "SR007", ServiceName: "Data Analytics", DocumentNumber: "SR-007", Status: "Completed"},
	{ID: "SR008", ServiceName: "Mobile Development", DocumentNumber: "SR-008", Status: "Active"},
	{ID: "SR009", ServiceName: "Integration Services", DocumentNumber: "SR-009", Status: "Pending"},
	{ID: "SR010", ServiceName: "Testing & QA", DocumentNumber: "SR-010", Status: "Active"},
	{ID: "SR011", ServiceName: "DevOps", DocumentNumber: "SR-011", Status: "Completed"},
	{ID: "SR012", ServiceName: "Support Services", DocumentNumber: "SR-012", Status: "Active"},
}

var seedConfigurationItems = []ConfigurationItem{
	{ID: "CI-001", CIName: "Payment Gateway Service"},
	{ID: "CI-002", CIName: "User Authentication Module"},
	{ID: "CI-003", CIName: "Email Notification System"},
	{ID: "CI-004", CIName: "Data Analytics Platform"},
	{ID: "CI-005", CIName: "Database Server Cluster"},
	{ID: "CI-006", CIName: "Load Balancer"},
	{ID: "CI-007", CIName: "API Gateway"},
	{ID: "CI-008", CIName: "Cache Server Redis"},
	{ID: "CI-009", CIName: "Message Queue Service"},
	{ID: "CI-010", CIName: "Monitoring System"},
	{ID: "CI-011", CIName: "Backup Storage"},
	{ID: "CI-012", CIName: "Security Firewall"},
	{ID: "CI-013", CIName: "Web Server Apache"},
	{ID: "CI-014", CIName: "Application Server Tomcat"},
	{ID: "CI-015", CIName: "Database MySQL"},
	{ID: "CI-016", CIName: "File Storage NFS"},
	{ID: "CI-017", CIName: "Network Switch"},
	{ID: "CI-018", CIName: "VPN Gateway"},
	{ID: "CI-019", CIName: "SSL Certificate Manager"},
	{ID: "CI-020", CIName: "Log Aggregation Service"},
}
