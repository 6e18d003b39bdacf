package main

// General API documentation for swaggo. Run `swag init` to generate docs.
//
// @title           esafd API
// @version         0.1.0
// @description     HTTP command surface over the ESAF shared registry.
//
// @contact.name   esafd maintainers
//
// @BasePath  /
//
// @schemes http
