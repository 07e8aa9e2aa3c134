package main

// @title           Sistema de Vendas API
// @version         1.0
// @description     API de gestão de vendas: clientes, produtos, vendas e dashboard

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
