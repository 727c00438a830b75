package centra

const suppliersQuery = `
query Suppliers {
    suppliers {
        id
        name
        status
    }
}`

const supplierVariantsQuery = `
query SupplierVariants($id: Int!, $limit: Int!, $page: Int!) {
    supplier(id: $id) {
        suppliedProductVariants(limit: $limit, page: $page) {
            productVariant {
                product {
                    id
                    name
                    status
                    productNumber
                    isBundle
                }
                productSizes {
                    stock {
                        quantity
                        productSize {
                            description
                        }
                    }
                }
            }
        }
    }
}`

const warehouseStockQuery = `
query ProductStocks($limit: Int!, $page: Int!) {
    warehouses {
        stock(limit: $limit, page: $page) {
            productSize {
                quantity
                size {
                    name
                }
                productVariant {
                    product {
                        id
                        name
                        status
                        productNumber
                        isBundle
                    }
                }
            }
        }
    }
}`

const productCostsQuery = `
query AllProductCosts($limit: Int!, $page: Int!) {
    products(limit: $limit, page: $page) {
        id
        productNumber
        variants {
            unitCost {
                value
            }
        }
    }
}`

// ordersQuery parameterizes the fulfillment status filter at the query level:
// with onlyShipped the where clause restricts to SHIPPED orders server-side.
func ordersQuery(onlyShipped bool) string {
	where := "{ orderDate: { from: $from, to: $to } }"
	if onlyShipped {
		where = "{ orderDate: { from: $from, to: $to }, status: [SHIPPED] }"
	}
	return `
query Orders($limit: Int!, $page: Int!, $from: DateTimeTz!, $to: DateTimeTz!) {
    orders(limit: $limit, page: $page, where: ` + where + `) {
        orderDate
        status
        lines {
            productVariant {
                product {
                    id
                    name
                }
            }
            size
            quantity
        }
    }
}`
}
