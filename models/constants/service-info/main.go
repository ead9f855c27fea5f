package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Iris Phenotype Prediction Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Iris eye colour prediction API using Golang!"
	SERVICE_DESCRIPTION ServiceInfo = "Iris phenotype prediction service for a genomics platform node."

	SERVICE_ARTIFACT    ServiceInfo = "iris"
	SERVICE_VERSION     ServiceInfo = "0.0.1"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("ca.c3g.bento:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
