// Command lambda serves the same handler set behind AWS Lambda + API
// Gateway. The bootstrap runs once per container, so warm invocations
// reuse the document store connection.
package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/shashiranjanraj/vastra/app/bootstrap"
)

func main() {
	handler, err := bootstrap.Handler()
	if err != nil {
		log.Fatalf("boot: %v", err)
	}
	lambda.Start(httpadapter.New(handler).ProxyWithContext)
}
