package i18n

var en = map[string]string{
	"home":                       "Home",
	"products":                   "Products",
	"categories":                 "Categories",
	"sale":                       "Sale",
	"winterSale":                 "Winter Sale",
	"brands":                     "Brands",
	"orders":                     "Orders",
	"wishlist":                   "Wishlist",
	"cart":                       "Cart",
	"settings":                   "Settings",
	"login":                      "Login",
	"logout":                     "Logout",
	"signup":                     "Signup",
	"register":                   "Register",
	"admin":                      "Admin",
	"welcomeToProGear":           "Welcome to ProGear",
	"premiumGamingEquipment":     "Premium gaming equipment trusted by professional esports players worldwide",
	"shopNow":                    "Shop Now",
	"viewSale":                   "View Sale",
	"featuredProducts":           "Featured Products",
	"handpickedGear":             "Handpicked gear for serious gamers",
	"viewAllProducts":            "View All Products",
	"discoverPremiumGaming":      "Discover premium gaming equipment",
	"productsFound":              "products found",
	"filters":                    "Filters",
	"category":                   "Category",
	"brand":                      "Brand",
	"tags":                       "Tags",
	"all":                        "All",
	"sortDefault":                "Sort: Default",
	"sortPriceLow":               "Price: Low to High",
	"sortPriceHigh":              "Price: High to Low",
	"sortRating":                 "Rating",
	"sortName":                   "Name",
	"noProductsFound":            "No products found",
	"tryAdjustingFilters":        "Try adjusting your filters",
	"addToCart":                  "Add to Cart",
	"buyNow":                     "Buy Now",
	"usedBy":                     "Used by",
	"new":                        "New",
	"topRated":                   "Top Rated",
	"featured":                   "Featured",
	"yourCart":                   "Your Cart",
	"emptyCart":                  "Your cart is empty",
	"startShopping":              "Start shopping to add items",
	"browseProducts":             "Browse Products",
	"quantity":                   "Quantity",
	"price":                      "Price",
	"remove":                     "Remove",
	"subtotal":                   "Subtotal",
	"shipping":                   "Shipping",
	"tax":                        "Tax",
	"total":                      "Total",
	"proceedToCheckout":          "Proceed to Checkout",
	"continueShopping":           "Continue Shopping",
	"checkout":                   "Checkout",
	"shippingInformation":        "Shipping Information",
	"fullName":                   "Full Name",
	"emailAddress":               "Email Address",
	"phoneNumber":                "Phone Number",
	"address":                    "Address",
	"city":                       "City",
	"zipCode":                    "Zip Code",
	"country":                    "Country",
	"paymentMethod":              "Payment Method",
	"creditCard":                 "Credit Card",
	"paypal":                     "PayPal",
	"cashOnDelivery":             "Cash on Delivery",
	"placeOrder":                 "Place Order",
	"orderSummary":               "Order Summary",
	"myOrders":                   "My Orders",
	"noOrders":                   "No orders yet",
	"startShoppingToPlaceOrders": "Start shopping to place orders",
	"orderNumber":                "Order",
	"orderDate":                  "Order Date",
	"orderStatus":                "Status",
	"orderTotal":                 "Total",
	"viewDetails":                "View Details",
	"pending":                    "Pending",
	"processing":                 "Processing",
	"shipped":                    "Shipped",
	"delivered":                  "Delivered",
	"cancelled":                  "Cancelled",
	"myWishlist":                 "My Wishlist",
	"emptyWishlist":              "Your wishlist is empty",
	"addItemsYouLove":            "Add items you love to your wishlist",
	"moveToCart":                 "Move to Cart",
	"search":                     "Search products, brands, pro players...",
	"searchResults":              "Search Results",
	"showingResultsFor":          "Showing results for",
	"noResultsFound":             "No results found",
	"tryDifferentKeywords":       "Try searching with different keywords",
	"browseByCategory":           "Browse by category",
	"shopByBrand":                "Shop by brand",
	"enterYourEmail":             "Enter your email",
	"enterYourPassword":          "Enter your password",
	"enterYourFullName":          "Enter your full name",
	"password":                   "Password",
	"createPassword":             "Create a password (min 6 characters)",
	"passwordMinLength":          "Password must be at least 6 characters long",
	"welcomeBack":                "Welcome Back!",
	"loginToContinue":            "Login to continue shopping",
	"createAccount":              "Create Account",
	"joinUs":                     "Join us and start shopping!",
	"dontHaveAccount":            "Don't have an account?",
	"alreadyHaveAccount":         "Already have an account?",
	"or":                         "or",
	"customizeExperience":        "Customize your experience",
	"theme":                      "Theme",
	"lightMode":                  "Light Mode",
	"darkMode":                   "Dark Mode",
	"language":                   "Language",
	"english":                    "English",
	"mongolian":                  "Mongolian",
	"currency":                   "Currency",
	"account":                    "Account",
	"email":                      "Email",
	"role":                       "Role",
	"youAreNotLoggedIn":          "You are not logged in",
	"proGearFooterDesc":          "Premium gaming equipment trusted by professional esports players worldwide.",
	"quickLinks":                 "Quick Links",
	"support":                    "Support",
	"contact":                    "Contact",
	"contactUs":                  "Contact Us",
	"shippingInfo":               "Shipping Info",
	"returnsPolicy":              "Returns Policy",
	"faq":                        "FAQ",
	"privacyPolicy":              "Privacy Policy",
	"termsOfService":             "Terms of Service",
	"allRightsReserved":          "All rights reserved.",
	"adminDashboard":             "Admin Dashboard",
	"manageYourPlatform":         "Manage your e-commerce platform",
	"totalProducts":              "Total Products",
	"totalOrders":                "Total Orders",
	"totalRevenue":               "Total Revenue",
	"pendingOrders":              "Pending Orders",
	"winterSaleControls":         "Winter Sale Controls",
	"removeBanner":               "Remove Banner",
	"addBanner":                  "Add Banner",
	"on":                         "ON",
	"off":                        "OFF",
	"banner":                     "Banner",
	"visible":                    "Visible",
	"hidden":                     "Hidden",
	"saleStatus":                 "Sale Status",
	"active":                     "Active",
	"inactive":                   "Inactive",
	"productsManagement":         "Products Management",
	"ordersManagement":           "Orders Management",
	"addNewProduct":              "Add New Product",
	"productTitle":               "Product Title",
	"description":                "Description",
	"image":                      "Image",
	"imageUrl":                   "Image URL",
	"title":                      "Title",
	"actions":                    "Actions",
	"delete":                     "Delete",
	"cancel":                     "Cancel",
	"save":                       "Save",
	"addProduct":                 "Add Product",
	"editProduct":                "Edit Product",
	"deleteProduct":              "Delete Product",
	"manageProducts":             "Manage Products",
	"manageOrders":               "Manage Orders",
	"manageUsers":                "Manage Users",
	"noOrdersYet":                "No orders yet",
	"order":                      "Order",
	"customer":                   "Customer",
	"date":                       "Date",
	"status":                     "Status",
	"deliveryAddress":            "Delivery Address",
	"totalAmount":                "Total Amount",
	"qty":                        "Qty",
	"accessDenied":               "Access Denied",
	"adminPrivilegesRequired":    "Admin privileges required",
	"goHome":                     "Go Home",
	"areYouSure":                 "Are you sure you want to delete this product?",
	"winterSaleBannerAdded":      "Winter Sale banner added!",
	"winterSaleBannerRemoved":    "Winter Sale banner removed!",
	"winterSaleActivated":        "Winter Sale activated!",
	"winterSaleDeactivated":      "Winter Sale deactivated!",
	"winterSaleIsLive":           "Winter Sale is Live! Get amazing discounts on premium gaming gear!",
	"shopNowLink":                "Shop Now",
	"productAdded":               "Product added to cart",
	"productRemoved":             "Product removed from cart",
	"addedToWishlist":            "Added to wishlist",
	"removedFromWishlist":        "Removed from wishlist",
	"orderPlaced":                "Order placed successfully",
	"loginRequired":              "Please login to continue",
	"adminAccessRequired":        "Admin access required",
	"filter":                     "Filter",
	"sortBy":                     "Sort By",
	"loading":                    "Loading...",
	"error":                      "Error",
	"success":                    "Success",
	"warning":                    "Warning",
	"info":                       "Info",
	"reviews":                    "Reviews",
	"writeReview":                "Write a Review",
	"yourRating":                 "Your Rating",
	"comment":                    "Comment",
	"submitReview":               "Submit Review",
	"noReviews":                  "No reviews yet",
	"proPlayer":                  "Pro Player",
	"team":                       "Team",
	"mouse":                      "Mouse",
	"keyboard":                   "Keyboard",
	"pleaseLoginToContinue":      "Please login to view this page",
	"users":                      "Users",
	"exportUsers":                "Export Users",
	"exportOrders":               "Export Orders",
	"estimatedDelivery":          "Estimated Delivery",
	"cancelOrder":                "Cancel Order",
	"saleSubtitle":               "Products over $50 at special prices",
	"winterSaleSubtitle":         "20% off everything while the sale is live",
	"winterSaleInactive":         "The winter sale is not running right now",
	"failedToLoadProducts":       "Failed to load products",
	"name":                       "Name",
	"sortNewest":                 "Newest",
	"toggleTheme":                "Toggle Theme",
	"saveSettings":               "Save Settings",
	"registrationSuccessful":     "Registration successful!",
	"welcomeAdmin":               "Welcome, Admin!",
	"loggedOut":                  "Logged out successfully",
	"orderCancelled":             "Order cancelled",
	"orderStatusUpdated":         "Order status updated",
	"reviewSubmitted":            "Review submitted successfully",
	"cartUpdated":                "Cart updated",
	"settingsSaved":              "Settings saved",
	"productSaved":               "Product saved",
	"productDeleted":             "Product deleted",
}
